package output

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for output configuration, allowing callers to
// customize flag names while keeping sensible defaults.
type Flags struct {
	Format string
	Indent string
	Output string
}

// Config holds CLI flag values for output configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewEncoder] to create an [Encoder].
type Config struct {
	Flags  Flags
	Format string
	Output string
	Indent int
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Format: "format",
		Indent: "indent",
		Output: "output",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds output flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Format, c.Flags.Format, "f", string(FormatJSON),
		fmt.Sprintf("output format, one of: %s", GetAllFormatStrings()))
	flags.IntVar(&c.Indent, c.Flags.Indent, defaultIndent,
		"indentation spaces (0 for compact JSON)")
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
}

// RegisterCompletions registers shell completions for output flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Indent,
		func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		})
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Indent, err)
	}

	return nil
}

// NewEncoder creates an [Encoder] using this [Config].
func (c *Config) NewEncoder() (*Encoder, error) {
	f, err := ParseFormat(c.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
	}

	if c.Indent < 0 {
		return nil, fmt.Errorf("%w: indent must not be negative, got %d", ErrInvalidOption, c.Indent)
	}

	return NewEncoder(WithFormat(f), WithIndent(c.Indent)), nil
}
