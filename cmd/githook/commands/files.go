package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/devnanny/githook/internal/engine/git"
	"github.com/spf13/cobra"
)

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "List the files staged for commit",
	Long: `Print every staged path with its change status (A added, C copied,
D deleted, M modified, R renamed, T type changed, U unmerged, X unknown).
In a repository without commits every staged file is reported as added.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		ws, err := openWorkspace(ctx)
		if err != nil {
			return err
		}
		return listFiles(ctx, ws.Git, flagJSON, cmd.OutOrStdout())
	},
}

// listFiles prints the staged change list, one "<status>\t<path>" per line.
func listFiles(ctx context.Context, svc git.Service, asJSON bool, out io.Writer) error {
	changes, err := svc.StagedChanges(ctx)
	if err != nil {
		return fmt.Errorf("getting staged files: %w", err)
	}

	if asJSON {
		data, err := json.MarshalIndent(changes.Entries(), "", "  ")
		if err != nil {
			return fmt.Errorf("encoding staged files: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, e := range changes.Entries() {
		fmt.Fprintf(out, "%s\t%s\n", e.Status, e.Path)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(filesCmd)
}
