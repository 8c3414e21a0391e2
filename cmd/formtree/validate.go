package main

import (
	"github.com/aretw0/formtree/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [definition]",
	Short: "Check data against a form definition",
	Long:  `Runs every validator of the definition against the data and reports the violations by field path.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exit(cli.Validate(cmd.Context(), optionsFrom(cmd, args)))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
