package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sweeplab/sweep/internal/config"
	"github.com/sweeplab/sweep/internal/exitcodes"
	"github.com/sweeplab/sweep/internal/preset"
)

func (a *App) newInitCmd() *cobra.Command {
	var dir string
	var presetName string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + config.FileName + " config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(dir, presetName, force)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to write the config into")
	cmd.Flags().StringVar(&presetName, "preset", "", "seed patterns from a named preset")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}

func (a *App) runInit(dir, presetName string, force bool) error {
	path := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(path); err == nil && !force {
		return &ExitError{
			Code:    exitcodes.ConfigError,
			Message: fmt.Sprintf("%s already exists — use --force to overwrite", path),
		}
	}

	patterns := preset.Default()
	if presetName != "" {
		var ok bool
		patterns, ok = preset.Patterns(presetName)
		if !ok {
			return &ExitError{
				Code:    exitcodes.ConfigError,
				Message: fmt.Sprintf("unknown preset %q: run 'sweep presets' to list them", presetName),
			}
		}
	}

	cfg := config.Default()
	cfg.Patterns = patterns

	if err := config.Save(path, cfg); err != nil {
		return &ExitError{Code: exitcodes.ConfigError, Message: err.Error()}
	}

	a.output.Success("Created %s", path)
	return nil
}
