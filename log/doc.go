// Package log builds [log/slog] handlers for the tokenize-comment command.
//
// Three formats are supported: [FormatJSON] and [FormatLogfmt] use the
// standard library handlers, and [FormatText] uses the human-readable
// handler from charm.land/log/v2. Levels are [LevelError], [LevelWarn],
// [LevelInfo], and [LevelDebug].
//
// [Config] wires the level and format to CLI flags via
// [github.com/spf13/pflag], with shell completions via
// [github.com/spf13/cobra]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	logger, err := cfg.NewLogger(os.Stderr)
//
// A [Publisher] fans log output out to subscribers. The browse command uses
// it to show log records inside its Bubble Tea view instead of writing them
// over the terminal:
//
//	pub := log.NewPublisher(log.WithHistory(100))
//	logger, err := cfg.NewLogger(pub)
//
//	sub := pub.Subscribe()
//	for entry := range sub.C() {
//	    // Deliver entry to the view.
//	}
package log
