package extract

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for extraction configuration, allowing callers
// to customize flag names while keeping sensible defaults.
type Flags struct {
	Extensions string
	AllBlocks  string
	Raw        string
}

// Config holds CLI flag values for extraction configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Use [Config.NewExtractor] to create an
// [Extractor].
type Config struct {
	Flags      Flags
	Extensions []string
	AllBlocks  bool
	Raw        bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Extensions: "ext",
		AllBlocks:  "all-blocks",
		Raw:        "raw",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds extraction flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringSliceVar(&c.Extensions, c.Flags.Extensions, DefaultExtensions(),
		"file extensions to scan when a directory is given")
	flags.BoolVar(&c.AllBlocks, c.Flags.AllBlocks, false,
		"include plain /* */ comments, not only /** */ doc comments")
	flags.BoolVar(&c.Raw, c.Flags.Raw, false,
		"treat each input as a single comment instead of scanning it for comments")
}

// RegisterCompletions registers shell completions for extraction flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Extensions,
		cobra.FixedCompletions(DefaultExtensions(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Extensions, err)
	}

	return nil
}

// NewExtractor creates an [Extractor] using this [Config]. Options are
// applied after those derived from the flags.
func (c *Config) NewExtractor(opts ...Option) (*Extractor, error) {
	exts := make([]string, 0, len(c.Extensions))

	for _, ext := range c.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}

		if strings.ContainsAny(ext, `/\`) {
			return nil, fmt.Errorf("%w: extension %q", ErrInvalidOption, ext)
		}

		exts = append(exts, ext)
	}

	if len(exts) == 0 {
		return nil, fmt.Errorf("%w: no extensions given", ErrInvalidOption)
	}

	opts = append([]Option{
		WithExtensions(exts...),
		WithAllBlocks(c.AllBlocks),
		WithRaw(c.Raw),
	}, opts...)

	return New(opts...), nil
}
