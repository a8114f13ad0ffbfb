package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sweeplab/sweep/internal/exitcodes"
	"github.com/sweeplab/sweep/internal/preset"
)

func (a *App) newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List preset pattern lists",
		Long:  "Without arguments, lists the available presets. With a name, prints that preset's patterns.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return a.showPreset(args[0])
			}
			a.listPresets()
			return nil
		},
	}
}

func (a *App) listPresets() {
	rows := make([][]string, 0, len(preset.Names))
	for _, name := range preset.Names {
		patterns, _ := preset.Patterns(name)
		rows = append(rows, []string{name, fmt.Sprintf("%d", len(patterns))})
	}
	a.output.Table([]string{"PRESET", "PATTERNS"}, rows)
}

func (a *App) showPreset(name string) error {
	patterns, ok := preset.Patterns(name)
	if !ok {
		return &ExitError{
			Code:    exitcodes.ConfigError,
			Message: fmt.Sprintf("unknown preset %q", name),
		}
	}
	for _, p := range patterns {
		a.output.Info("%s", p)
	}
	return nil
}
