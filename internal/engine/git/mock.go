package git

import (
	"context"
	"slices"
)

// MockService is a test double for git.Service.
type MockService struct {
	Raw      []byte
	RawErr   error
	Store    *DirHookStore
	StoreErr error
}

// CommittedFiles returns the configured raw buffer.
func (m *MockService) CommittedFiles(_ context.Context) ([]byte, error) {
	return m.Raw, m.RawErr
}

// StagedChanges parses the configured raw buffer.
func (m *MockService) StagedChanges(_ context.Context) (ChangeList, error) {
	if m.RawErr != nil {
		return ChangeList{}, m.RawErr
	}
	return ParseChangeList(m.Raw), nil
}

// HookStore returns the configured store.
func (m *MockService) HookStore(_ context.Context) (*DirHookStore, error) {
	return m.Store, m.StoreErr
}

// MockRunner records invocations and replies from a table keyed by subcommand.
type MockRunner struct {
	Calls   [][]string
	Outputs map[string][]byte
	Errors  map[string]error
}

// Run records args and returns the output configured for args[0].
func (m *MockRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, slices.Clone(args))
	if len(args) == 0 {
		return nil, nil
	}
	if err, ok := m.Errors[args[0]]; ok {
		return nil, err
	}
	return m.Outputs[args[0]], nil
}
