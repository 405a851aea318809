package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glaciome/xcsv"
)

func newSchemaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "schema [flags]",
		Short: "Emit the JSON Schema of the JSON envelope",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := json.MarshalIndent(xcsv.EnvelopeSchema(), "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", xcsv.ErrWriteOutput, err)
			}

			out = append(out, '\n')

			return writeOutput(output, out)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-",
		"output path, - for stdout")

	return cmd
}
