// Command tokenize-comment parses JSDoc-style documentation comments into
// structured records.
//
// # Usage
//
//	tokenize-comment [flags] [file|directory|-] ...
//	tokenize-comment browse [flags] [file|directory] ...
//	tokenize-comment schema
//	tokenize-comment version
//
// With no arguments the root command reads standard input. Directories are
// scanned recursively for files matching --ext. Every "/**" comment found is
// split into a description, tags, and examples and written as JSON or YAML.
// With --raw each input is treated as one comment instead of being scanned.
//
// The browse command shows the same records in an interactive terminal view.
// The schema command prints the JSON Schema of the output.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := newApp()

	rootCmd, completionErr := a.rootCmd()
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	err := a.execute(ctx, rootCmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		stop()
		os.Exit(1)
	}
}
