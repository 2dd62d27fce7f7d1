package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/devnanny/githook/internal/platform/logger"
)

// DefaultTimeout bounds a single git invocation.
const DefaultTimeout = time.Hour

// Runner executes a git subcommand and returns its stdout verbatim.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// CommandError describes a git invocation that did not exit cleanly.
type CommandError struct {
	Args     []string
	ExitCode int // -1 when the process could not be started or was killed
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += " (stderr: " + stderr + ")"
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner implements Runner by running the git binary via os/exec.
type ExecRunner struct {
	// WorkDir is the working directory for git commands.
	// If empty, the current directory is used.
	WorkDir string
	// Binary is the git executable. Defaults to "git".
	Binary string
	// Timeout bounds each invocation. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// NewExecRunner creates an ExecRunner for workDir with default binary and timeout.
func NewExecRunner(workDir string) *ExecRunner {
	return &ExecRunner{WorkDir: workDir}
}

// Run executes git with args and returns stdout untouched.
func (r *ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	binary := r.Binary
	if binary == "" {
		binary = "git"
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	logger.FromContext(ctx).Debug("running git", "args", args, "dir", r.WorkDir)

	cmd := exec.CommandContext(ctx, binary, args...) // #nosec G204 -- args are built by the application, not user input
	cmd.Dir = r.WorkDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, &CommandError{
			Args:     args,
			ExitCode: exitCode,
			Stderr:   stderr.String(),
			Err:      err,
		}
	}

	return stdout.Bytes(), nil
}
