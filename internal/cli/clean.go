package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sweeplab/sweep/internal/cleaner"
	"github.com/sweeplab/sweep/internal/config"
	"github.com/sweeplab/sweep/internal/exitcodes"
	"github.com/sweeplab/sweep/internal/preset"
	"github.com/sweeplab/sweep/internal/ui"
)

// runClean resolves the effective configuration and executes a cleaning
// job, mapping the outcome to an exit code.
func (a *App) runClean(cmd *cobra.Command) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return &ExitError{Code: exitcodes.ConfigError, Message: err.Error()}
	}

	// Explicit flags override config-file values.
	flags := cmd.Flags()
	if flags.Changed("path") {
		cfg.Path = a.path
	}
	if flags.Changed("pattern") {
		cfg.Patterns = a.patterns
	}
	if flags.Changed("exclude") {
		cfg.ExcludePatterns = a.excludes
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = a.dryRun
	}
	if flags.Changed("yes") {
		cfg.SkipConfirmation = a.yes
	}
	if flags.Changed("include-symlinks") {
		cfg.IncludeSymlinks = a.includeSymlinks
	}
	if flags.Changed("remove-broken-symlinks") {
		cfg.RemoveBrokenSymlinks = a.removeBroken
	}
	if flags.Changed("stats") {
		cfg.StatsMode = a.statsMode
	}
	if flags.Changed("older-than") {
		cfg.OlderThan = a.olderThan
	}
	if flags.Changed("progress") {
		cfg.ShowProgress = a.showProgress
	}

	patterns, err := a.resolvePatterns(cfg)
	if err != nil {
		return &ExitError{Code: exitcodes.ConfigError, Message: err.Error()}
	}

	var olderThan time.Duration
	if cfg.OlderThan != "" {
		olderThan, err = config.ParseDuration(cfg.OlderThan)
		if err != nil {
			return &ExitError{Code: exitcodes.ConfigError, Message: err.Error()}
		}
	}

	opts := cleaner.Options{
		Root:                 cfg.Path,
		Patterns:             patterns,
		ExcludePatterns:      cfg.ExcludePatterns,
		DryRun:               cfg.DryRun,
		SkipConfirmation:     cfg.SkipConfirmation,
		IncludeSymlinks:      cfg.IncludeSymlinks,
		RemoveBrokenSymlinks: cfg.RemoveBrokenSymlinks,
		StatsMode:            cfg.StatsMode,
		OlderThan:            olderThan,
		ShowProgress:         cfg.ShowProgress,
		JSONMode:             a.jsonMode,
	}

	jobOpts := []cleaner.Option{
		cleaner.WithConfirmer(a.confirm),
	}
	// In JSON mode the default silent reporter suppresses diagnostics;
	// the structured failure list carries them instead.
	if !a.jsonMode {
		jobOpts = append(jobOpts, cleaner.WithReporter(a.output))
		if opts.ShowProgress {
			jobOpts = append(jobOpts, cleaner.WithProgress(ui.NewProgress()))
		}
	}

	job := cleaner.NewJob(opts, jobOpts...)

	// The spinner is for unattended structured runs only: with
	// confirmation enabled, Run blocks on a prompt that needs the
	// terminal to itself.
	var runErr error
	if a.jsonMode && opts.SkipConfirmation {
		runErr = ui.WithSpinner("Scanning...", job.Run)
	} else {
		runErr = job.Run()
	}

	if a.jsonMode && reportable(runErr) {
		out, jsonErr := job.JSON()
		if jsonErr != nil {
			return &ExitError{Code: exitcodes.GeneralError, Message: jsonErr.Error()}
		}
		fmt.Fprintln(a.stdout, string(out))
	}

	return a.mapRunError(runErr)
}

// loadConfig resolves the config source: an explicit --config file, the
// discovered project or global config, or defaults.
func (a *App) loadConfig() (*config.Config, error) {
	if a.noConfig {
		return config.Default(), nil
	}
	if a.configPath != "" {
		return config.Load(a.configPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}
	if path, ok := config.Discover(cwd); ok {
		return config.Load(path)
	}
	return config.Default(), nil
}

// resolvePatterns layers the preset (if any) under the configured
// patterns, falling back to the default preset set when nothing is
// configured. A broken-symlink-only run needs no patterns.
func (a *App) resolvePatterns(cfg *config.Config) ([]string, error) {
	patterns := cfg.Patterns
	if a.presetName != "" {
		presetPatterns, ok := preset.Patterns(a.presetName)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q: run 'sweep presets' to list them", a.presetName)
		}
		patterns = append(presetPatterns, patterns...)
	}
	if len(patterns) == 0 && !cfg.RemoveBrokenSymlinks {
		patterns = preset.Default()
	}
	return patterns, nil
}

// reportable says whether the JSON report should still be rendered for a
// run error. Fatal pre-run errors produce no report; deletion failures
// do, since the run completed.
func reportable(err error) bool {
	if err == nil {
		return true
	}
	var dErr *cleaner.DeletionsFailedError
	return errors.As(err, &dErr)
}

// mapRunError converts engine errors into exit-code-carrying errors.
func (a *App) mapRunError(err error) error {
	if err == nil {
		return nil
	}
	var pErr *cleaner.PatternError
	var cErr *cleaner.ConfigError
	var dErr *cleaner.DeletionsFailedError
	switch {
	case errors.As(err, &pErr):
		return &ExitError{Code: exitcodes.PatternError, Message: pErr.Error()}
	case errors.As(err, &cErr):
		return &ExitError{Code: exitcodes.ConfigError, Message: cErr.Error()}
	case errors.As(err, &dErr):
		return &ExitError{Code: exitcodes.DeletionsFailed, Message: dErr.Error()}
	}
	return err
}
