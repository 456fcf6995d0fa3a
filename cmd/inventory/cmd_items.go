package main

import (
	"fmt"

	"github.com/gostonefire/inventoryindex/internal/report"
	"github.com/spf13/cobra"
)

var cmdItems = &cobra.Command{
	Use:               "items",
	Short:             "List the configured item definitions",
	DisableAutoGenTag: true,
	Args:              cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.Items(cmd.OutOrStdout(), cfg.Items)
	},
}

var cmdVersion = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	DisableAutoGenTag: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "inventory %s\n", version)
	},
}

func init() {
	cmdRoot.AddCommand(cmdItems)
	cmdRoot.AddCommand(cmdVersion)
}
