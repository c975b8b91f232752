package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jtwebb/tokenize-comment/comment"
	"github.com/jtwebb/tokenize-comment/extract"
	"github.com/jtwebb/tokenize-comment/log"
	"github.com/jtwebb/tokenize-comment/output"
	"github.com/jtwebb/tokenize-comment/profile"
)

// app holds the configuration shared by all commands.
type app struct {
	logCfg     *log.Config
	extractCfg *extract.Config
	outputCfg  *output.Config
	profileCfg *profile.Config
	profiler   *profile.Profiler
	isTerminal func() bool
}

func newApp() *app {
	return &app{
		logCfg:     log.NewConfig(),
		extractCfg: extract.NewConfig(),
		outputCfg:  output.NewConfig(),
		profileCfg: profile.NewConfig(),
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
}

// rootCmd builds the command tree. The returned error reports flag
// completions that could not be registered; the command is usable either way.
func (a *app) rootCmd() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "tokenize-comment [flags] [file|directory|-] ...",
		Short: "Tokenize JSDoc-style comments into JSON or YAML",
		Long: `tokenize-comment finds documentation comments in JavaScript and TypeScript
sources and splits each one into a description, a list of tags, and a list of
examples. With no arguments it reads standard input.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			a.profiler = a.profileCfg.NewProfiler()

			return a.profiler.Start()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTokenize(cmd, args)
		},
	}

	a.logCfg.RegisterFlags(cmd.PersistentFlags())
	a.extractCfg.RegisterFlags(cmd.PersistentFlags())
	a.profileCfg.RegisterFlags(cmd.PersistentFlags())
	a.outputCfg.RegisterFlags(cmd.Flags())

	cmd.AddCommand(
		a.browseCmd(),
		schemaCmd(),
		versionCmd(),
	)

	err := errors.Join(
		a.logCfg.RegisterCompletions(cmd),
		a.extractCfg.RegisterCompletions(cmd),
		a.outputCfg.RegisterCompletions(cmd),
		a.profileCfg.RegisterCompletions(cmd),
	)

	return cmd, err
}

// execute runs cmd and then writes any profiles enabled by flags.
func (a *app) execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if a.profiler != nil {
		err = errors.Join(err, a.profiler.Stop())
	}

	return err
}

func (a *app) runTokenize(cmd *cobra.Command, args []string) error {
	logger, err := a.logCfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	enc, err := a.outputCfg.NewEncoder()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		args = []string{extract.Stdin}
	}

	docs, readErr := a.collect(cmd, logger, args)
	if docs == nil {
		return readErr
	}

	out, err := enc.Marshal(docs)
	if err != nil {
		return err
	}

	err = a.write(cmd.OutOrStdout(), out)
	if err != nil {
		return err
	}

	return readErr
}

// collect tokenizes every comment found under args. Paths and files that
// cannot be read are logged and skipped; their errors are joined into the
// second result. The returned documents are nil only when the extractor could
// not be configured or the context was canceled.
func (a *app) collect(cmd *cobra.Command, logger *slog.Logger, args []string) ([]output.Document, error) {
	ex, err := a.extractCfg.NewExtractor(extract.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	paths, err := ex.Files(cmd.Context(), args)
	if err != nil && !errors.Is(err, extract.ErrReadInput) {
		return nil, err
	}

	docs := []output.Document{}
	readErrs := []error{err}

	for _, path := range paths {
		src, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			logger.Warn("skip unreadable input",
				slog.String("file", path),
				slog.Any("error", err),
			)

			readErrs = append(readErrs, err)

			continue
		}

		blocks := ex.Blocks(src)
		logger.Debug("scanned file",
			slog.String("file", path),
			slog.Int("comments", len(blocks)),
		)

		for _, b := range blocks {
			c := comment.Tokenize(b.Text)
			logger.Debug("tokenized comment",
				slog.String("file", path),
				slog.Int("line", b.Line),
				slog.Int("tags", len(c.Tags)),
				slog.Int("examples", len(c.Examples)),
			)

			docs = append(docs, output.Document{
				File:    path,
				Line:    b.Line,
				EndLine: b.EndLine,
				Comment: c,
			})
		}
	}

	return docs, errors.Join(readErrs...)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == extract.Stdin {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", extract.ErrReadInput, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", extract.ErrReadInput, err)
	}

	return data, nil
}

// write sends out to the configured output file, or to stdout.
func (a *app) write(stdout io.Writer, out []byte) error {
	if a.outputCfg.Output == "" || a.outputCfg.Output == "-" {
		_, err := stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", output.ErrWriteOutput, err)
		}

		return nil
	}

	err := os.WriteFile(a.outputCfg.Output, out, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", output.ErrWriteOutput, err)
	}

	return nil
}
