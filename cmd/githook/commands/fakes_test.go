package commands

import (
	"context"
	"io/fs"
	"time"

	"github.com/devnanny/githook/internal/engine/hook"
)

// --- fakeInstaller implements HookInstaller for unit tests ---

type fakeInstaller struct {
	states     map[hook.Name]hook.State
	stateErr   error
	installErr error
	drift      string
	driftErr   error
	installed  []hook.Name
}

func (f *fakeInstaller) Install(_ context.Context, name hook.Name) (bool, error) {
	if f.installErr != nil {
		return false, f.installErr
	}
	f.installed = append(f.installed, name)
	return true, nil
}

func (f *fakeInstaller) State(_ context.Context, name hook.Name) (hook.State, error) {
	if f.stateErr != nil {
		return 0, f.stateErr
	}
	if !name.IsSupported() {
		return hook.StateUnsupported, nil
	}
	if s, ok := f.states[name]; ok {
		return s, nil
	}
	return hook.StateAbsent, nil
}

func (f *fakeInstaller) Drift(_ context.Context, _ hook.Name) (string, error) {
	return f.drift, f.driftErr
}

// --- mockInitFS implements InitFS for unit tests ---

type mockInitFS struct {
	statErr      error
	statNotExist bool
	writeErr     error
	writtenData  []byte
	writtenPath  string
}

func (m *mockInitFS) Stat(_ string) (fs.FileInfo, error) {
	if m.statNotExist {
		return nil, m.statErr
	}
	return &mockFileInfo{}, m.statErr
}

func (m *mockInitFS) IsNotExist(_ error) bool {
	return m.statNotExist
}

func (m *mockInitFS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	m.writtenPath = name
	m.writtenData = data
	return m.writeErr
}

// mockFileInfo satisfies fs.FileInfo for testing.
type mockFileInfo struct{}

func (m *mockFileInfo) Name() string       { return ".githook.yaml" }
func (m *mockFileInfo) Size() int64        { return 0 }
func (m *mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return false }
func (m *mockFileInfo) Sys() interface{}   { return nil }
