package main

import (
	"github.com/aretw0/formtree/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [definition]",
	Short: "Show the structure of a form definition",
	Long: `Prints the definition as an outline, a Mermaid diagram (graph TD), JSON or YAML.
With --data, the Mermaid view highlights the fields the data violates.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		view, _ := cmd.Flags().GetString("view")
		exit(cli.Inspect(cmd.Context(), optionsFrom(cmd, args), view))
	},
}

func init() {
	inspectCmd.Flags().String("view", cli.ViewOutline, "View: outline, mermaid, json or yaml")
	rootCmd.AddCommand(inspectCmd)
}
