// Package commands implements the CLI commands for githook.
package commands

import (
	"errors"
	"fmt"

	"github.com/devnanny/githook/internal/platform/logger"
	"github.com/spf13/cobra"
)

// Global flag values accessible to all commands.
var (
	flagJSON    bool
	flagSARIF   bool
	flagVerbose bool
	flagNoColor bool
	flagConfig  string
)

// rootCmd is the base command for the githook CLI.
var rootCmd = &cobra.Command{
	Use:   "githook",
	Short: "Git pre-commit hook helper",
	Long: `githook installs a pre-commit hook into the current repository and, when the
hook fires, checks the files staged for commit against the rules declared in
.githook.yaml. Blocking rule failures abort the commit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		l := logger.New(cmd.ErrOrStderr(), flagVerbose, flagJSON)
		ctx := logger.WithContext(cmd.Context(), l)
		cmd.SetContext(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output results as JSON to stdout")
	rootCmd.PersistentFlags().BoolVar(&flagSARIF, "sarif", false, "Output check results as SARIF 2.1.0 to stdout")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and list staged files")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the config file (default ./.githook.yaml)")
}

// Execute runs the root command. Returns an error if the command fails.
// Failed checks have already been reported and are not printed again.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, ErrChecksFailed) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "❌ %v\n", err)
	}
	return err
}
