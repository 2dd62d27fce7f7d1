package hook

import (
	"bytes"
	"context"
	"errors"
	"io/fs"

	"github.com/devnanny/githook/internal/platform/logger"
)

// Store is where a repository's hooks live.
type Store interface {
	Has(name string) (bool, error)
	Get(name string) ([]byte, error)
	SetSymlink(name, target string) error
}

// Source provides the canonical hook scripts.
type Source interface {
	SourcePath(name Name) string
	SourceContent(name Name) ([]byte, error)
}

// pather is implemented by stores that can report where a hook lives.
type pather interface {
	Path(name string) string
}

// Installer links canonical hook scripts into a Store.
type Installer struct {
	store  Store
	source Source
}

// NewInstaller creates an Installer.
func NewInstaller(store Store, source Source) *Installer {
	return &Installer{store: store, source: source}
}

// State reports how name is installed. An installed hook is valid when its
// content equals the canonical source byte for byte, whether it was linked or
// copied. A dangling symlink is divergent.
func (i *Installer) State(ctx context.Context, name Name) (State, error) {
	if !name.IsSupported() {
		return StateUnsupported, nil
	}

	present, err := i.store.Has(string(name))
	if err != nil {
		return 0, err
	}
	if !present {
		return StateAbsent, nil
	}

	source, err := i.source.SourceContent(name)
	if err != nil {
		return 0, err
	}

	installed, err := i.store.Get(string(name))
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Debug("installed hook is a dangling link", "hook", name)
		return StatePresentDivergent, nil
	}
	if err != nil {
		return 0, err
	}

	if bytes.Equal(installed, source) {
		return StatePresentValid, nil
	}
	return StatePresentDivergent, nil
}

// Install makes sure name is installed. It returns true when the hook is in
// place afterwards, either because it already matched the canonical source or
// because it was just linked. An existing hook with other content is never
// touched and yields a *HookExistsError.
func (i *Installer) Install(ctx context.Context, name Name) (bool, error) {
	log := logger.FromContext(ctx)

	if !name.IsSupported() {
		return false, &UnsupportedHookError{Name: name, Supported: Supported()}
	}

	state, err := i.State(ctx, name)
	if err != nil {
		return false, err
	}

	switch state {
	case StatePresentValid:
		log.Info("hook already installed", "hook", name)
		return true, nil
	case StatePresentDivergent:
		return false, &HookExistsError{Name: name, Path: i.storePath(name)}
	}

	target := i.source.SourcePath(name)
	if err := i.store.SetSymlink(string(name), target); err != nil {
		return false, err
	}

	log.Info("hook installed", "hook", name, "target", target)
	return true, nil
}

func (i *Installer) storePath(name Name) string {
	if p, ok := i.store.(pather); ok {
		return p.Path(string(name))
	}
	return ""
}
