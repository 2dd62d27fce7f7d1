package hook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/patrickmn/go-cache"
)

// Locator finds the canonical hook scripts shipped under an install root,
// at <root>/git/hook/<name>.
type Locator struct {
	root     string
	readFile func(string) ([]byte, error)
	// contents memoizes source files by hook name. Sources do not change
	// while the process runs, so entries never expire.
	contents *cache.Cache
}

// NewLocator creates a Locator for the given install root. A relative root is
// made absolute against the working directory, since hooks link to
// SourcePath and a relative link target resolves against the hooks directory.
func NewLocator(root string) *Locator {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &Locator{
		root:     root,
		readFile: os.ReadFile,
		contents: cache.New(cache.NoExpiration, 0),
	}
}

// DefaultRoot derives the install root from the running executable, which is
// expected at <root>/bin/githook.
func DefaultRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// Root returns the install root.
func (l *Locator) Root() string {
	return l.root
}

// SourcePath returns the path of the canonical script for name.
func (l *Locator) SourcePath(name Name) string {
	return filepath.Join(l.root, "git", "hook", string(name))
}

// SourceContent returns the canonical script for name. The file is read at
// most once per name; failed reads are not remembered.
func (l *Locator) SourceContent(name Name) ([]byte, error) {
	if cached, ok := l.contents.Get(string(name)); ok {
		return cached.([]byte), nil
	}

	path := l.SourcePath(name)
	data, err := l.readFile(path) // #nosec G304 -- path is built from the install root and an allow-listed name
	if err != nil {
		return nil, fmt.Errorf("reading hook source %s: %w", path, err)
	}

	l.contents.Set(string(name), data, cache.NoExpiration)
	return data, nil
}
