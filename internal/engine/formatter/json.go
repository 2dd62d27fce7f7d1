package formatter

import (
	"encoding/json"

	"github.com/devnanny/githook/internal/engine/git"
)

// JSONFormatter outputs a Report as pretty-printed JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format returns the Report as indented JSON.
func (f *JSONFormatter) Format(report Report) string {
	if report.Files == nil {
		report.Files = []git.ChangeEntry{}
	}
	if report.Rules == nil {
		report.Rules = []RuleResult{}
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return `{"error": "failed to marshal report"}`
	}
	return string(data)
}
