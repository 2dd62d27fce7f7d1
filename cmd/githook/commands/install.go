package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/devnanny/githook/internal/engine/hook"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install [hook]",
	Short: "Install a git hook (default pre-commit)",
	Long: `Link the canonical hook script into the repository hook directory.
Installing an already installed hook is a no-op. An existing hook with other
content is never overwritten: remove or back it up first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		ws, err := openWorkspace(ctx)
		if err != nil {
			return err
		}
		inst, err := ws.installer(ctx)
		if err != nil {
			return err
		}

		return installHook(ctx, inst, hookArg(args), cmd.OutOrStdout())
	},
}

// installHook installs name and reports whether anything changed.
func installHook(ctx context.Context, inst HookInstaller, name hook.Name, out io.Writer) error {
	before, err := inst.State(ctx, name)
	if err != nil {
		return err
	}

	if _, err := inst.Install(ctx, name); err != nil {
		return err
	}

	if before == hook.StatePresentValid {
		fmt.Fprintf(out, "✅ %s hook already installed\n", name)
		return nil
	}
	fmt.Fprintf(out, "🔒 %s hook installed\n", name)
	return nil
}

// hookArg returns the hook named on the command line, or pre-commit.
func hookArg(args []string) hook.Name {
	if len(args) == 0 {
		return hook.PreCommit
	}
	return hook.Name(args[0])
}

func init() {
	rootCmd.AddCommand(installCmd)
}
