package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jtwebb/tokenize-comment/output"
)

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(output.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", output.ErrWriteOutput, err)
			}

			out = append(out, '\n')

			_, err = cmd.OutOrStdout().Write(out)
			if err != nil {
				return fmt.Errorf("%w: %w", output.ErrWriteOutput, err)
			}

			return nil
		},
	}
}
