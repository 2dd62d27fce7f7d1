package git

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/devnanny/githook/internal/platform/logger"
)

// HooksDir returns the absolute path of the repository's hook directory.
// It honours core.hooksPath and linked worktrees.
func (s *ExecService) HooksDir(ctx context.Context) (string, error) {
	out, err := s.runner.Run(ctx, "rev-parse", "--path-format=absolute", "--git-path", "hooks")
	if err != nil {
		return "", fmt.Errorf("finding hooks directory: %w", err)
	}

	return strings.TrimSpace(string(out)), nil
}

// HookStore returns a DirHookStore for the repository's hook directory.
func (s *ExecService) HookStore(ctx context.Context) (*DirHookStore, error) {
	dir, err := s.HooksDir(ctx)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("using hooks directory", "path", dir)
	return NewDirHookStore(dir), nil
}

// DirHookStore stores hooks as entries of a directory, one per hook name.
type DirHookStore struct {
	Dir string
}

// NewDirHookStore creates a DirHookStore rooted at dir.
func NewDirHookStore(dir string) *DirHookStore {
	return &DirHookStore{Dir: dir}
}

// Path returns the location of the hook called name.
func (d *DirHookStore) Path(name string) string {
	return filepath.Join(d.Dir, name)
}

// Has reports whether an entry called name exists. Dangling symlinks count.
func (d *DirHookStore) Has(name string) (bool, error) {
	_, err := os.Lstat(d.Path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking hook %s: %w", name, err)
}

// Get returns the installed content of the hook, following symlinks.
func (d *DirHookStore) Get(name string) ([]byte, error) {
	data, err := os.ReadFile(d.Path(name)) // #nosec G304 -- path is built from the hooks dir and an allow-listed name
	if err != nil {
		return nil, fmt.Errorf("reading hook %s: %w", name, err)
	}
	return data, nil
}

// SetSymlink makes the hook called name a symlink to target, replacing any
// existing entry.
func (d *DirHookStore) SetSymlink(name, target string) error {
	if err := os.MkdirAll(d.Dir, 0o750); err != nil {
		return fmt.Errorf("creating hooks directory: %w", err)
	}

	path := d.Path(name)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("replacing hook %s: %w", name, err)
	}

	if err := os.Symlink(target, path); err != nil {
		return fmt.Errorf("linking hook %s: %w", name, err)
	}

	return nil
}
