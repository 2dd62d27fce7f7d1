package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/devnanny/githook/internal/engine/hook"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [hook]",
	Short: "Show whether hooks are installed",
	Long: `Report the installation state of a hook (default: every supported hook).
A divergent hook is shown with a diff against the canonical script.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		ws, err := openWorkspace(ctx)
		if err != nil {
			return err
		}
		inst, err := ws.installer(ctx)
		if err != nil {
			return err
		}

		names := hook.Supported()
		if len(args) == 1 {
			names = []hook.Name{hook.Name(args[0])}
		}
		return hookStatus(ctx, inst, names, flagJSON, cmd.OutOrStdout())
	},
}

// hookStatusEntry is the JSON shape of one hook's status.
type hookStatusEntry struct {
	Hook  hook.Name `json:"hook"`
	State string    `json:"state"`
	Drift string    `json:"drift,omitempty"`
}

// hookStatus prints the state of each hook, with drift for divergent ones.
func hookStatus(ctx context.Context, inst HookInstaller, names []hook.Name, asJSON bool, out io.Writer) error {
	entries := make([]hookStatusEntry, 0, len(names))
	for _, name := range names {
		state, err := inst.State(ctx, name)
		if err != nil {
			return fmt.Errorf("checking %s hook: %w", name, err)
		}

		entry := hookStatusEntry{Hook: name, State: state.String()}
		if state == hook.StatePresentDivergent {
			entry.Drift, err = inst.Drift(ctx, name)
			if err != nil {
				return fmt.Errorf("diffing %s hook: %w", name, err)
			}
		}
		entries = append(entries, entry)
	}

	if asJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding status: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%s %s: %s\n", stateIcon(e.State), e.Hook, e.State)
		if e.Drift != "" {
			for _, line := range strings.SplitAfter(e.Drift, "\n") {
				if line != "" {
					fmt.Fprintf(out, "    %s", line)
				}
			}
		}
	}
	return nil
}

func stateIcon(state string) string {
	switch state {
	case hook.StatePresentValid.String():
		return "✅"
	case hook.StatePresentDivergent.String():
		return "⚠️"
	case hook.StateUnsupported.String():
		return "❌"
	default:
		return "➖"
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
