package commands

import (
	"github.com/spf13/cobra"
)

var dryRunCmd = &cobra.Command{
	Use:   "dry-run",
	Short: "Check staged files but always exit 0 (informational only)",
	Long: `Evaluate the configured rules identically to 'check', but always exit 0
regardless of the results. Useful for trying out a configuration without blocking commits.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runPipeline(cmd.Context(), cmd.OutOrStdout(), true)
	},
}

func init() {
	rootCmd.AddCommand(dryRunCmd)
}
