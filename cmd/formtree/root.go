package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/aretw0/formtree/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "formtree",
	Short: "Formtree validates and fills nested forms",
	Long: `Formtree loads a form definition (YAML or JSON), runs data through it
and reports violations, the normalized value or the submitted output.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("def", "", "Form definition file (.yaml, .yml or .json)")
	rootCmd.PersistentFlags().String("data", "", "Data file, or - to read from stdin")
	rootCmd.PersistentFlags().String("format", cli.FormatAuto, "Output format: auto, json or pretty")
	rootCmd.PersistentFlags().Bool("metrics", false, "Print Prometheus metrics to stderr when done")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("strict", false, "Reject data whose structure does not match the definition")
}

// optionsFrom reads the persistent flags. A positional argument stands in
// for --def.
func optionsFrom(cmd *cobra.Command, args []string) cli.Options {
	defPath, _ := cmd.Flags().GetString("def")
	if !cmd.Flags().Changed("def") && len(args) > 0 {
		defPath = args[0]
	}
	dataPath, _ := cmd.Flags().GetString("data")
	format, _ := cmd.Flags().GetString("format")
	metrics, _ := cmd.Flags().GetBool("metrics")
	debug, _ := cmd.Flags().GetBool("debug")
	strict, _ := cmd.Flags().GetBool("strict")

	return cli.Options{
		DefPath:  defPath,
		DataPath: dataPath,
		Format:   format,
		Metrics:  metrics,
		Debug:    debug,
		Strict:   strict,
		Stdin:    cmd.InOrStdin(),
		Stdout:   cmd.OutOrStdout(),
		Stderr:   cmd.ErrOrStderr(),
	}
}

// exit reports a command error. Violations were already printed, so only
// the exit code is set for them.
func exit(err error) {
	if err == nil {
		return
	}
	if !errors.Is(err, cli.ErrViolations) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
