package commands

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/devnanny/githook/internal/engine/config"
	"github.com/devnanny/githook/internal/engine/hook"
	"github.com/devnanny/githook/internal/platform/logger"
	"github.com/spf13/cobra"
)

// InitFS abstracts file system operations needed by the init command.
type InitFS interface {
	Stat(name string) (fs.FileInfo, error)
	IsNotExist(err error) bool
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

var _ InitFS = (*config.RealFileSystem)(nil)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize githook in the current repository",
	Long: `Generate a default .githook.yaml if none exists and install the git
pre-commit hook.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		log.Info("init started")

		ws, err := openWorkspace(ctx)
		if err != nil {
			return err
		}

		inst, err := ws.installer(ctx)
		if err != nil {
			return fmt.Errorf("installing hook: %w", err)
		}

		if err := initProject(ctx, configPath(ws.Dir), &config.RealFileSystem{}, inst, cmd.OutOrStdout()); err != nil {
			return err
		}

		log.Info("init completed")
		return nil
	},
}

// initProject performs the init workflow with injected dependencies for testability.
func initProject(ctx context.Context, cfgPath string, fsys InitFS, inst HookInstaller, out io.Writer) error {
	// 1. Generate the default config if it doesn't exist.
	if _, err := fsys.Stat(cfgPath); fsys.IsNotExist(err) {
		if writeErr := fsys.WriteFile(cfgPath, []byte(config.DefaultYAML), 0o644); writeErr != nil { // #nosec G306 -- config file, not sensitive
			return fmt.Errorf("writing %s: %w", filepath.Base(cfgPath), writeErr)
		}
		fmt.Fprintf(out, "📝 Created %s with the built-in rules. Customize it.\n", cfgPath)
	} else {
		fmt.Fprintf(out, "⚡ Config already exists at %s. Skipping generation.\n", cfgPath)
	}

	// 2. Install the pre-commit hook.
	if _, err := inst.Install(ctx, hook.PreCommit); err != nil {
		return fmt.Errorf("installing hook: %w", err)
	}

	fmt.Fprintln(out, "🔒 githook initialized successfully!")
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
