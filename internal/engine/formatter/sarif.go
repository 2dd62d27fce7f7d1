package formatter

import (
	"bytes"
	"fmt"

	"github.com/owenrumney/go-sarif/v2/sarif"
)

const (
	sarifToolName = "githook"
	sarifToolURI  = "https://github.com/devnanny/githook"
)

// SARIFFormatter outputs a Report as a SARIF 2.1.0 log, one result per finding.
type SARIFFormatter struct{}

// NewSARIFFormatter creates a new SARIFFormatter.
func NewSARIFFormatter() *SARIFFormatter {
	return &SARIFFormatter{}
}

// Format returns the Report as an indented SARIF document.
func (f *SARIFFormatter) Format(report Report) string {
	log, err := sarif.New(sarif.Version210)
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}

	run := sarif.NewRunWithInformationURI(sarifToolName, sarifToolURI)
	for _, r := range report.Rules {
		desc := r.Description
		if desc == "" {
			desc = r.Name
		}
		run.AddRule(r.Name).WithDescription(desc)

		for _, finding := range r.Findings {
			result := run.CreateResultForRule(r.Name).
				WithLevel(sarifLevel(r, finding)).
				WithMessage(sarif.NewTextMessage(finding.Message))
			if finding.Path != "" {
				run.AddDistinctArtifact(finding.Path)
				result.AddLocation(sarif.NewLocationWithPhysicalLocation(
					sarif.NewPhysicalLocation().
						WithArtifactLocation(sarif.NewSimpleArtifactLocation(finding.Path)),
				))
			}
		}
	}
	log.AddRun(run)

	var buf bytes.Buffer
	if err := log.PrettyWrite(&buf); err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return buf.String()
}

// sarifLevel maps a finding to a SARIF level. Non-blocking rules never
// report above warning.
func sarifLevel(r RuleResult, finding Finding) string {
	if !r.Blocking || finding.Severity == SeverityWarning {
		return "warning"
	}
	return "error"
}
