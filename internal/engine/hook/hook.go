// Package hook installs the canonical githook scripts into a repository's
// hook directory and reports whether an installed hook has drifted.
package hook

import (
	"fmt"
	"slices"
)

// Name identifies a git hook, e.g. "pre-commit".
type Name string

// PreCommit is the hook run by `git commit` before the commit message is asked for.
const PreCommit Name = "pre-commit"

var supported = []Name{PreCommit}

// Supported returns the hook names that can be installed.
func Supported() []Name {
	return slices.Clone(supported)
}

// IsSupported reports whether n is in the allow-list.
func (n Name) IsSupported() bool {
	return slices.Contains(supported, n)
}

// State is the installation state of a hook, derived on every query.
type State int

const (
	StateUnsupported State = iota
	StateAbsent
	StatePresentValid
	StatePresentDivergent
)

func (s State) String() string {
	switch s {
	case StateUnsupported:
		return "unsupported"
	case StateAbsent:
		return "absent"
	case StatePresentValid:
		return "installed"
	case StatePresentDivergent:
		return "divergent"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}
