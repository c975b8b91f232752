package profile

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for profiling configuration, allowing callers to
// customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	CPU    string
	Heap   string
	Allocs string
}

// Config holds profile output paths. An empty path disables that profile, so
// a zero-value Config profiles nothing.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewProfiler] to create a [Profiler].
type Config struct {
	Flags  Flags
	CPU    string
	Heap   string
	Allocs string
}

// NewConfig creates a new [Config] with default flag names and all profiles
// disabled.
func NewConfig() *Config {
	return &Config{
		Flags: Flags{
			CPU:    "cpu-profile",
			Heap:   "heap-profile",
			Allocs: "allocs-profile",
		},
	}
}

// RegisterFlags adds profiling flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.CPU, c.Flags.CPU, "", "write CPU profile to file")
	flags.StringVar(&c.Heap, c.Flags.Heap, "", "write heap profile to file")
	flags.StringVar(&c.Allocs, c.Flags.Allocs, "", "write allocs profile to file")
}

// RegisterCompletions limits file completion for profile flags on cmd to
// pprof files. The flags must be registered as persistent flags of cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	for _, name := range []string{c.Flags.CPU, c.Flags.Heap, c.Flags.Allocs} {
		err := cmd.MarkPersistentFlagFilename(name, "prof", "pprof")
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", name, err)
		}
	}

	return nil
}

// NewProfiler creates a new [Profiler] using this [Config].
func (c *Config) NewProfiler() *Profiler {
	return &Profiler{cfg: *c}
}
