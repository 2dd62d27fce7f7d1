package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/devnanny/githook/internal/engine/config"
	"github.com/devnanny/githook/internal/engine/formatter"
	"github.com/devnanny/githook/internal/engine/git"
	"github.com/devnanny/githook/internal/engine/rule"
	"github.com/devnanny/githook/internal/platform/logger"
)

// ErrChecksFailed is returned when a blocking rule fails.
var ErrChecksFailed = errors.New("checks failed")

// PipelineOpts holds per-invocation options for the pipeline.
type PipelineOpts struct {
	DryRun  bool
	JSON    bool
	SARIF   bool
	Verbose bool
	NoColor bool
}

// Pipeline checks the staged change list against the configured rules.
type Pipeline struct {
	// Git provides the staged change list.
	Git git.Service

	// Rules are evaluated in order.
	Rules []config.Rule

	// Stdout is the output writer for formatted results.
	Stdout io.Writer

	// now is overridable for deterministic durations in tests.
	now func() time.Time
}

// runPipeline wires real infrastructure and delegates to Pipeline.Execute.
func runPipeline(ctx context.Context, out io.Writer, dryRun bool) error {
	log := logger.FromContext(ctx)

	ws, err := openWorkspace(ctx)
	if err != nil {
		return err
	}

	pipeline := &Pipeline{
		Git:    ws.Git,
		Rules:  ws.Config.Rules,
		Stdout: out,
	}

	err = pipeline.Execute(ctx, PipelineOpts{
		DryRun:  dryRun,
		JSON:    flagJSON,
		SARIF:   flagSARIF,
		Verbose: flagVerbose,
		NoColor: !ws.useColor(),
	})
	if err != nil && !errors.Is(err, ErrChecksFailed) {
		log.Error("check failed", "error", err)
	}
	return err
}

// Execute runs the check and prints the report.
func (p *Pipeline) Execute(ctx context.Context, opts PipelineOpts) error {
	log := logger.FromContext(ctx)
	operation := "check"
	if opts.DryRun {
		operation = "dry-run"
	}
	log.Info("githook check started", "operation", operation, "rules", len(p.Rules))

	now := p.now
	if now == nil {
		now = time.Now
	}
	start := now()

	changes, err := p.Git.StagedChanges(ctx)
	if err != nil {
		return fmt.Errorf("getting staged files: %w", err)
	}
	log.Debug("staged changes", "count", changes.Len())

	report := rule.Check(p.Rules, changes)
	report.DurationMs = now().Sub(start).Milliseconds()

	var fmtr formatter.Formatter
	switch {
	case opts.SARIF:
		fmtr = formatter.NewSARIFFormatter()
	case opts.JSON:
		fmtr = formatter.NewJSONFormatter()
	default:
		fmtr = formatter.NewCLIFormatter(!opts.NoColor, opts.Verbose)
	}
	fmt.Fprint(p.Stdout, fmtr.Format(report))

	if opts.DryRun {
		return nil
	}
	if !report.Passed {
		return ErrChecksFailed
	}
	return nil
}
