package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtwebb/tokenize-comment/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprint(cmd.OutOrStdout(), version.Get())
			if err != nil {
				return fmt.Errorf("print version: %w", err)
			}

			return nil
		},
	}
}
