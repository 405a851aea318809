package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glaciome/xcsv/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "xcsv %s\n", version.Get())
		},
	}
}
