package main

import (
	"github.com/aretw0/formtree/internal/cli"
	"github.com/spf13/cobra"
)

var fillCmd = &cobra.Command{
	Use:   "fill [definition]",
	Short: "Fill a form interactively",
	Long: `Prompts for every field, starting from --data when given, and submits.
Invalid fields are reported and asked again. Type 'quit' or press Ctrl+C to stop.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")
		exit(cli.Fill(cmd.Context(), optionsFrom(cmd, args), headless))
	},
}

func init() {
	fillCmd.Flags().Bool("headless", false, "Read answers without printing prompts (for scripts)")
	rootCmd.AddCommand(fillCmd)
}
