package git

import (
	"bytes"
)

// Status is the single-letter change classification emitted by
// `git diff-index --name-status`.
type Status string

// Possible status letters.
const (
	StatusAdded       Status = "A"
	StatusCopied      Status = "C"
	StatusDeleted     Status = "D"
	StatusModified    Status = "M"
	StatusRenamed     Status = "R"
	StatusTypeChanged Status = "T"
	StatusUnmerged    Status = "U" // the merge must be completed before committing
	StatusUnknown     Status = "X" // most likely a git bug
)

var statusDescriptions = map[Status]string{
	StatusAdded:       "added",
	StatusCopied:      "copied",
	StatusDeleted:     "deleted",
	StatusModified:    "modified",
	StatusRenamed:     "renamed",
	StatusTypeChanged: "type changed",
	StatusUnmerged:    "unmerged",
	StatusUnknown:     "unknown",
}

// Known reports whether s is one of the documented status letters.
func (s Status) Known() bool {
	_, ok := statusDescriptions[s]
	return ok
}

// Description returns a lower-case label for s, or the raw code if s is not known.
func (s Status) Description() string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return string(s)
}

// ChangeEntry is a single staged path and its status.
type ChangeEntry struct {
	Path   string `json:"path"`
	Status Status `json:"status"`
}

// ChangeList maps staged paths to their status, preserving the order in
// which git reported them. The zero value is an empty list.
type ChangeList struct {
	order  []string
	status map[string]Status
}

// Len returns the number of distinct paths.
func (c ChangeList) Len() int {
	return len(c.order)
}

// Status returns the status recorded for path.
func (c ChangeList) Status(path string) (Status, bool) {
	s, ok := c.status[path]
	return s, ok
}

// Paths returns the paths in report order.
func (c ChangeList) Paths() []string {
	paths := make([]string, len(c.order))
	copy(paths, c.order)
	return paths
}

// Entries returns the path/status pairs in report order.
func (c ChangeList) Entries() []ChangeEntry {
	entries := make([]ChangeEntry, 0, len(c.order))
	for _, p := range c.order {
		entries = append(entries, ChangeEntry{Path: p, Status: c.status[p]})
	}
	return entries
}

// set records status for path. A path seen again keeps its original position
// and takes the later status.
func (c *ChangeList) set(path string, status Status) {
	if c.status == nil {
		c.status = make(map[string]Status)
	}
	if _, seen := c.status[path]; !seen {
		c.order = append(c.order, path)
	}
	c.status[path] = status
}

// ParseChangeList decodes the output of
// `git diff-index --cached --name-status -z`, which alternates status and
// path tokens, each terminated by NUL:
//
//	A\x00src/main.go\x00M\x00README.md\x00
//
// Parsing never fails. The token after the last NUL is always dropped (it is
// empty for well-formed input), an unpaired trailing status is dropped, and
// pairs with an empty path are skipped. Status codes are kept verbatim.
func ParseChangeList(raw []byte) ChangeList {
	var list ChangeList

	tokens := bytes.Split(raw, []byte{0})
	tokens = tokens[:len(tokens)-1]

	for i := 0; i+1 < len(tokens); i += 2 {
		path := string(tokens[i+1])
		if path == "" {
			continue
		}
		list.set(path, Status(tokens[i]))
	}

	return list
}
