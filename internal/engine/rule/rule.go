// Package rule evaluates configured rules against the staged change list.
package rule

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/devnanny/githook/internal/engine/config"
	"github.com/devnanny/githook/internal/engine/formatter"
	"github.com/devnanny/githook/internal/engine/git"
)

// Select returns the paths a rule applies to, in change-list order.
//
// Rules:
//   - If no only/except patterns are configured, every path is selected.
//   - Paths matching an except pattern are removed first.
//   - If only is set, a remaining path is kept only if it matches an only pattern.
//   - Patterns use filepath.Match glob syntax and match either the full
//     path or its base name ("*.go" selects "cmd/main.go").
func Select(r config.Rule, paths []string) []string {
	var selected []string
	for _, p := range paths {
		if len(r.Except) > 0 && matchesPattern(p, r.Except) {
			continue
		}
		if len(r.Only) > 0 && !matchesPattern(p, r.Only) {
			continue
		}
		selected = append(selected, p)
	}
	return selected
}

// matchesPattern returns true if the file matches any of the given glob patterns.
func matchesPattern(file string, patterns []string) bool {
	base := filepath.Base(file)
	for _, p := range patterns {
		if matched, _ := filepath.Match(p, file); matched {
			return true
		}
		if matched, _ := filepath.Match(p, base); matched {
			return true
		}
	}
	return false
}

// Evaluate runs a single rule against the change list.
func Evaluate(r config.Rule, changes git.ChangeList) formatter.RuleResult {
	blocking := r.IsBlocking()
	severity := formatter.SeverityError
	if !blocking {
		severity = formatter.SeverityWarning
	}

	selected := Select(r, changes.Paths())
	result := formatter.RuleResult{
		Name:        r.Name,
		Description: r.Message,
		Blocking:    blocking,
		Selected:    len(selected),
	}

	if len(r.DenyStatus) > 0 {
		for _, p := range selected {
			status, _ := changes.Status(p)
			if !slices.Contains(r.DenyStatus, status) {
				continue
			}
			msg := r.Message
			if msg == "" {
				msg = fmt.Sprintf("%s files are not allowed", status.Description())
			}
			result.Findings = append(result.Findings, formatter.Finding{
				Path:     p,
				Status:   status,
				Message:  msg,
				Severity: severity,
			})
		}
	}

	if r.MaxFiles > 0 && len(selected) > r.MaxFiles {
		msg := fmt.Sprintf("%d files selected, at most %d allowed", len(selected), r.MaxFiles)
		if r.Message != "" {
			msg = fmt.Sprintf("%s (%s)", r.Message, msg)
		}
		result.Findings = append(result.Findings, formatter.Finding{
			Message:  msg,
			Severity: severity,
		})
	}

	result.Passed = len(result.Findings) == 0
	return result
}

// Check evaluates every rule in order. The report passes unless a blocking
// rule fails.
func Check(rules []config.Rule, changes git.ChangeList) formatter.Report {
	report := formatter.Report{
		Passed: true,
		Files:  changes.Entries(),
		Rules:  make([]formatter.RuleResult, 0, len(rules)),
	}
	for _, r := range rules {
		res := Evaluate(r, changes)
		if !res.Passed && res.Blocking {
			report.Passed = false
		}
		report.Rules = append(report.Rules, res)
	}
	return report
}
