package main

import (
	"github.com/aretw0/formtree/internal/cli"
	"github.com/spf13/cobra"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [definition]",
	Short: "Print the data as the form stores it",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exit(cli.Normalize(cmd.Context(), optionsFrom(cmd, args)))
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
}
