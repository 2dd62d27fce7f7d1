package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/devnanny/githook/internal/platform/logger"
)

const (
	// HeadRef is the diff base once the repository has at least one commit.
	HeadRef = "HEAD"
	// EmptyTreeHash is the object name of the empty tree. Diffing the index
	// against it reports every staged file as added.
	EmptyTreeHash = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"
)

// HeadState tells whether HEAD points at a commit.
type HeadState int

const (
	// HeadResolved means HEAD names an existing commit.
	HeadResolved HeadState = iota
	// HeadUnborn means the current branch has no commits yet.
	HeadUnborn
)

func (s HeadState) String() string {
	switch s {
	case HeadResolved:
		return "resolved"
	case HeadUnborn:
		return "unborn"
	default:
		return fmt.Sprintf("HeadState(%d)", int(s))
	}
}

// HeadLookup is the outcome of resolving HEAD.
type HeadLookup struct {
	State HeadState
	// Ref is the reference to diff against; set only when State is HeadResolved.
	Ref string
}

// DiffBase returns the tree-ish the index should be compared with.
func (h HeadLookup) DiffBase() string {
	if h.State == HeadUnborn {
		return EmptyTreeHash
	}
	return h.Ref
}

// ExecService implements Service on top of a Runner.
type ExecService struct {
	runner Runner
}

// NewExecService creates an ExecService that runs the git binary in workDir.
func NewExecService(workDir string) *ExecService {
	return NewService(NewExecRunner(workDir))
}

// NewService creates an ExecService backed by runner.
func NewService(runner Runner) *ExecService {
	return &ExecService{runner: runner}
}

// TopLevel returns the absolute path of the working tree's top-level directory.
func (s *ExecService) TopLevel(ctx context.Context) (string, error) {
	out, err := s.runner.Run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("finding repository root: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// LookupHead resolves HEAD with `git rev-parse --verify --quiet HEAD`.
// With --quiet, git exits 1 and prints nothing when HEAD does not name a
// commit, which on a repository without commits is the unborn-branch case.
// Every other failure is returned as is.
func (s *ExecService) LookupHead(ctx context.Context) (HeadLookup, error) {
	_, err := s.runner.Run(ctx, "rev-parse", "--verify", "--quiet", HeadRef)
	if err == nil {
		return HeadLookup{State: HeadResolved, Ref: HeadRef}, nil
	}

	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode == 1 && cmdErr.Stderr == "" {
		return HeadLookup{State: HeadUnborn}, nil
	}

	return HeadLookup{}, fmt.Errorf("resolving HEAD: %w", err)
}

// CommittedFiles returns the raw output of
// `git diff-index --cached --name-status -z --no-color <base>`, where base is
// HEAD, or the empty tree when nothing has been committed yet.
func (s *ExecService) CommittedFiles(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	head, err := s.LookupHead(ctx)
	if err != nil {
		return nil, err
	}

	base := head.DiffBase()
	log.Debug("diffing index", "base", base, "head", head.State.String())

	out, err := s.runner.Run(ctx, "diff-index", "--cached", "--name-status", "-z", "--no-color", base)
	if err != nil {
		return nil, fmt.Errorf("listing staged files: %w", err)
	}

	return out, nil
}

// StagedChanges returns the parsed staged change list.
func (s *ExecService) StagedChanges(ctx context.Context) (ChangeList, error) {
	raw, err := s.CommittedFiles(ctx)
	if err != nil {
		return ChangeList{}, err
	}

	changes := ParseChangeList(raw)
	logger.FromContext(ctx).Debug("staged changes parsed", "count", changes.Len())
	return changes, nil
}
