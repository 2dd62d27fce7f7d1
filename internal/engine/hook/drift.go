package hook

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Drift returns a line diff from the installed hook to the canonical source,
// prefixed "-" for installed-only and "+" for source-only lines. It is empty
// unless the hook is present and divergent.
func (i *Installer) Drift(ctx context.Context, name Name) (string, error) {
	state, err := i.State(ctx, name)
	if err != nil || state != StatePresentDivergent {
		return "", err
	}

	source, err := i.source.SourceContent(name)
	if err != nil {
		return "", err
	}

	installed, err := i.store.Get(string(name))
	if errors.Is(err, fs.ErrNotExist) {
		installed = nil
	} else if err != nil {
		return "", err
	}

	return lineDiff(string(installed), string(source)), nil
}

func lineDiff(from, to string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix)
			out.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}
	return out.String()
}
