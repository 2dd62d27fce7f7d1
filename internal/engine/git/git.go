// Package git wraps the git executable for staged-change extraction and
// exposes the repository hook directory as a hook store.
package git

import (
	"context"
)

// Service abstracts repository operations for testability.
type Service interface {
	// CommittedFiles returns the raw NUL-delimited output of
	// `git diff-index --cached --name-status -z` against the diff base.
	CommittedFiles(ctx context.Context) ([]byte, error)
	// StagedChanges returns the parsed change list of staged files.
	StagedChanges(ctx context.Context) (ChangeList, error)
	// HookStore returns the store backing the repository's hook directory.
	HookStore(ctx context.Context) (*DirHookStore, error)
}
