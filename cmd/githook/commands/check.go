package commands

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check staged files and block the commit on failure",
	Long: `Evaluate the configured rules against the files staged for commit. Exit 0 if
all blocking rules pass, exit 1 if any blocking rule fails. Non-blocking rule
failures are reported but do not affect the exit code. This is what the
installed pre-commit hook runs.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPipeline(cmd.Context(), cmd.OutOrStdout(), false)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
