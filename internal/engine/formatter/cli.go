package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// CLIFormatter outputs a Report as a human-readable CLI report.
type CLIFormatter struct {
	Color   bool
	Verbose bool

	bold   *color.Color
	red    *color.Color
	green  *color.Color
	yellow *color.Color
	cyan   *color.Color
	dim    *color.Color
}

// NewCLIFormatter creates a new CLIFormatter. Color is forced on or off
// regardless of whether the output is a terminal.
func NewCLIFormatter(useColor, verbose bool) *CLIFormatter {
	f := &CLIFormatter{
		Color:   useColor,
		Verbose: verbose,
		bold:    color.New(color.Bold),
		red:     color.New(color.FgRed),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		cyan:    color.New(color.FgCyan),
		dim:     color.New(color.Faint),
	}
	for _, c := range []*color.Color{f.bold, f.red, f.green, f.yellow, f.cyan, f.dim} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

// Format returns a formatted CLI report.
func (f *CLIFormatter) Format(report Report) string {
	var b strings.Builder

	icon := f.green.Sprint("✅")
	status := "passed"
	if !report.Passed {
		icon = f.red.Sprint("❌")
		status = "failed"
	}
	fmt.Fprintf(&b, "\n%s %s: %s, %d staged %s in %dms\n\n",
		icon,
		f.bold.Sprint("githook"),
		status,
		len(report.Files),
		plural(len(report.Files), "file", "files"),
		report.DurationMs)

	if f.Verbose && len(report.Files) > 0 {
		for _, e := range report.Files {
			fmt.Fprintf(&b, "  %s %s\n", f.dim.Sprint(string(e.Status)), e.Path)
		}
		b.WriteString("\n")
	}

	for _, r := range report.Rules {
		selected := fmt.Sprintf("%d %s", r.Selected, plural(r.Selected, "file", "files"))
		name := f.bold.Sprint(r.Name)
		if !r.Blocking {
			name += " " + f.dim.Sprint("(non-blocking)")
		}
		fmt.Fprintf(&b, "  %s %s %s\n", f.ruleIcon(r), name, f.dim.Sprint(selected))

		for _, finding := range r.Findings {
			f.writeFinding(&b, finding)
		}
	}

	return b.String()
}

func (f *CLIFormatter) writeFinding(b *strings.Builder, finding Finding) {
	loc := ""
	if finding.Path != "" {
		loc = f.cyan.Sprint(finding.Path) + " "
		if finding.Status != "" {
			loc = f.dim.Sprint("["+string(finding.Status)+"]") + " " + loc
		}
	}

	sevIcon := "❌"
	msg := f.red.Sprint(finding.Message)
	if finding.Severity == SeverityWarning {
		sevIcon = "⚠️"
		msg = f.yellow.Sprint(finding.Message)
	}

	fmt.Fprintf(b, "    %s %s%s\n", sevIcon, loc, msg)
}

func (f *CLIFormatter) ruleIcon(r RuleResult) string {
	if r.Passed {
		return f.green.Sprint("✅")
	}
	if !r.Blocking {
		return f.yellow.Sprint("⚠️")
	}
	return f.red.Sprint("❌")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
