package hook

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedHook matches errors for hook names outside the allow-list.
	ErrUnsupportedHook = errors.New("unsupported hook")
	// ErrHookExists matches errors for installed hooks that differ from the canonical source.
	ErrHookExists = errors.New("hook already exists")
)

// UnsupportedHookError is returned when a hook name is not in the allow-list.
type UnsupportedHookError struct {
	Name      Name
	Supported []Name
}

func (e *UnsupportedHookError) Error() string {
	names := make([]string, len(e.Supported))
	for i, n := range e.Supported {
		names[i] = string(n)
	}
	return fmt.Sprintf(`hook of type "%s" is not supported, must be one of "%s"`, e.Name, strings.Join(names, `", "`))
}

func (e *UnsupportedHookError) Is(target error) bool {
	return target == ErrUnsupportedHook
}

// HookExistsError is returned when a hook is installed whose content differs
// from the canonical source. It is never resolved automatically.
type HookExistsError struct {
	Name Name
	Path string
}

func (e *HookExistsError) Error() string {
	msg := fmt.Sprintf("other hook %q already exists", e.Name)
	if e.Path != "" {
		msg += " at " + e.Path + ", remove it or back it up first"
	}
	return msg
}

func (e *HookExistsError) Is(target error) bool {
	return target == ErrHookExists
}
