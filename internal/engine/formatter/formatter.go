// Package formatter renders staged-change rule reports for CLI, JSON and SARIF output.
package formatter

import (
	"github.com/devnanny/githook/internal/engine/git"
)

// Severity levels attached to a finding.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Finding is a single staged path rejected by a rule. Path is empty for
// findings about the change list as a whole (e.g. too many files).
type Finding struct {
	Path     string     `json:"path,omitempty"`
	Status   git.Status `json:"status,omitempty"`
	Message  string     `json:"message"`
	Severity string     `json:"severity"`
}

// RuleResult holds the outcome of evaluating one rule.
type RuleResult struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Passed      bool      `json:"passed"`
	Blocking    bool      `json:"blocking"`
	Selected    int       `json:"selected"`
	Findings    []Finding `json:"findings,omitempty"`
}

// Report holds the aggregated result of all rules in a check.
type Report struct {
	Passed     bool              `json:"passed"`
	DurationMs int64             `json:"duration_ms"`
	Files      []git.ChangeEntry `json:"files"`
	Rules      []RuleResult      `json:"rules"`
}

// Failed returns the rules that did not pass.
func (r Report) Failed() []RuleResult {
	var failed []RuleResult
	for _, rr := range r.Rules {
		if !rr.Passed {
			failed = append(failed, rr)
		}
	}
	return failed
}

// Formatter formats a Report into a human-readable or machine-readable string.
type Formatter interface {
	Format(report Report) string
}
