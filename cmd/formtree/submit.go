package main

import (
	"github.com/aretw0/formtree/internal/cli"
	"github.com/spf13/cobra"
)

var submitCmd = &cobra.Command{
	Use:   "submit [definition]",
	Short: "Validate the data and print the submitted output",
	Long: `Validates the data like validate does. When it is valid, prints the output
the form submits: unchecked toggles and empty fields are left out.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exit(cli.Submit(cmd.Context(), optionsFrom(cmd, args)))
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
}
