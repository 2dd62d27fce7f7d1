package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/devnanny/githook/internal/engine/config"
	"github.com/devnanny/githook/internal/engine/git"
	"github.com/devnanny/githook/internal/engine/hook"
	"github.com/devnanny/githook/internal/platform/logger"
)

// HookInstaller abstracts hook installation for the init, install and status commands.
type HookInstaller interface {
	Install(ctx context.Context, name hook.Name) (bool, error)
	State(ctx context.Context, name hook.Name) (hook.State, error)
	Drift(ctx context.Context, name hook.Name) (string, error)
}

// workspace is the composition root shared by all commands. It holds the
// loaded configuration and a git service bound to the working directory.
type workspace struct {
	Dir    string
	Config *config.Config
	Git    *git.ExecService
}

// getwd is a variable for testability (defaults to os.Getwd).
var getwd = os.Getwd

// openWorkspace loads the configuration for the current repository and wires
// the git runner from it. The config file lives at the repository top level,
// where git runs the installed hook, even when invoked from a subdirectory.
// Outside a repository the working directory is used.
func openWorkspace(ctx context.Context) (*workspace, error) {
	log := logger.FromContext(ctx)

	cwd, err := getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	// The config names the git binary, so the root is found with the
	// environment override or the default binary.
	locate := git.NewService(&git.ExecRunner{WorkDir: cwd, Binary: os.Getenv("GITHOOK_GIT")})
	dir, err := locate.TopLevel(ctx)
	if err != nil {
		log.Debug("not inside a work tree, using working directory", "dir", cwd, "error", err)
		dir = cwd
	}

	cfg, err := config.Load(ctx, configPath(dir))
	if err != nil {
		return nil, err
	}

	runner := &git.ExecRunner{
		WorkDir: dir,
		Binary:  cfg.Git.Binary,
		Timeout: cfg.Git.Timeout,
	}
	log.Debug("workspace opened", "dir", dir, "git", cfg.Git.Binary, "timeout", cfg.Git.Timeout)

	return &workspace{Dir: dir, Config: cfg, Git: git.NewService(runner)}, nil
}

// configPath returns the --config value or the default file in the repository root dir.
func configPath(dir string) string {
	if flagConfig != "" {
		return flagConfig
	}
	return filepath.Join(dir, config.FileName)
}

// installer builds a hook installer over the repository hook directory and
// the canonical scripts of the install root.
func (w *workspace) installer(ctx context.Context) (*hook.Installer, error) {
	store, err := w.Git.HookStore(ctx)
	if err != nil {
		return nil, err
	}

	root := w.Config.Hooks.InstallRoot
	if root == "" {
		root, err = hook.DefaultRoot()
		if err != nil {
			return nil, err
		}
	}
	logger.FromContext(ctx).Debug("hook source root", "root", root, "hooks_dir", store.Dir)

	return hook.NewInstaller(store, hook.NewLocator(root)), nil
}

// useColor reports whether CLI output should be colored.
func (w *workspace) useColor() bool {
	return !flagNoColor && w.Config.Output.ColorEnabled()
}
