// Package cleaner implements the target-collection and deletion engine:
// it walks a directory tree, matches entries against include/exclude glob
// patterns, enforces containment within the canonicalized root, and removes
// matched entries with per-item failure isolation.
package cleaner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

const (
	// brokenSymlinkTag attributes entries matched via the broken-symlink
	// path, which bypasses pattern matching entirely.
	brokenSymlinkTag = "broken-symlink"

	// unknownTag is the fallback attribution when no include pattern can
	// be re-derived for a matched entry.
	unknownTag = "unknown"
)

// Reporter receives diagnostic output from a run. Implementations are
// injected per job; the engine never writes to a global logger.
type Reporter interface {
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}

// noopReporter discards all output. Used when no reporter is injected,
// and by the CLI in structured-output mode to suppress diagnostic noise.
type noopReporter struct{}

func (noopReporter) Info(string, ...any)    {}
func (noopReporter) Warning(string, ...any) {}
func (noopReporter) Error(string, ...any)   {}

// Confirmer asks the user a yes/no question before bulk deletion.
type Confirmer func(message string) (bool, error)

// ProgressReporter receives periodic scan updates. Purely observational.
type ProgressReporter interface {
	Update(scanned, matched int)
	Println(msg string)
	Finish(scanned, matched int)
}

// deleteMode selects how matched entries are handled. It is fixed once
// per run from the configuration, never re-evaluated per entry.
type deleteMode int

const (
	// deleteBuffered collects targets and removes them after confirmation.
	deleteBuffered deleteMode = iota
	// deleteEager removes each entry inline during the walk. Selected for
	// unattended runs (skip-confirmation and not dry-run).
	deleteEager
)

// PatternStat accumulates per-pattern match statistics.
type PatternStat struct {
	Count int
	Size  int64
}

// Failure records a single removal that could not be completed.
type Failure struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// MatchedItem is a single matched entry for structured output.
type MatchedItem struct {
	Path    string `json:"path"`
	Size    int64  `json:"size"`
	Pattern string `json:"pattern"`
}

// target is a buffered deletion candidate with its cached metadata.
type target struct {
	path string
	info fs.FileInfo
}

// Job executes one cleaning run. Aggregate state is freshly constructed
// per job and owned exclusively by it; a Job must not be reused.
type Job struct {
	opts Options

	reporter Reporter
	confirm  Confirmer
	progress ProgressReporter
	sizer    DirSizer
	mode     deleteMode

	targets []target

	// Run aggregates. Populated during the walk, readable after Run.
	Counter         int
	Size            int64
	Stats           map[string]PatternStat
	FailedDeletions []Failure
	Matched         []MatchedItem
}

// Option configures a Job.
type Option func(*Job)

// WithReporter sets the diagnostic reporter.
func WithReporter(r Reporter) Option {
	return func(j *Job) { j.reporter = r }
}

// WithConfirmer sets the confirmation prompt used before bulk deletion.
func WithConfirmer(c Confirmer) Option {
	return func(j *Job) { j.confirm = c }
}

// WithProgress sets the progress reporter for scan updates.
func WithProgress(p ProgressReporter) Option {
	return func(j *Job) { j.progress = p }
}

// WithDirSizer overrides how recursive directory sizes are computed.
func WithDirSizer(s DirSizer) Option {
	return func(j *Job) { j.sizer = s }
}

// NewJob creates a cleaning job for the given options.
func NewJob(opts Options, options ...Option) *Job {
	j := &Job{
		opts:     opts,
		reporter: noopReporter{},
		sizer:    walkSizer{},
		Stats:    make(map[string]PatternStat),
	}
	if opts.SkipConfirmation && !opts.DryRun {
		j.mode = deleteEager
	}
	for _, o := range options {
		o(j)
	}
	return j
}

// HasFailures reports whether any deletions failed.
func (j *Job) HasFailures() bool {
	return len(j.FailedDeletions) > 0
}

// Run executes the job: validate the root, compile matchers, collect
// targets, optionally confirm, delete, and summarize.
//
// It returns a *ConfigError or *PatternError before any filesystem
// mutation, a *DeletionsFailedError if any removals failed, or nil.
func (j *Job) Run() error {
	root, err := canonicalRoot(j.opts.Root)
	if err != nil {
		return err
	}

	// Compile every matcher before walking so a bad exclude pattern can
	// never surface after eager deletions have already started.
	include, err := compileSet(j.opts.Patterns)
	if err != nil {
		return err
	}
	var exclude *matcherSet
	if len(j.opts.ExcludePatterns) > 0 {
		exclude, err = compileSet(j.opts.ExcludePatterns)
		if err != nil {
			return err
		}
	}

	j.collect(root, include, exclude)

	if j.opts.StatsMode && !j.opts.JSONMode {
		j.displayStats()
	}

	if len(j.targets) > 0 && !j.opts.SkipConfirmation {
		if j.confirm == nil {
			return &ConfigError{Err: fmt.Errorf("confirmation required but no prompt configured")}
		}
		confirmed, confirmErr := j.confirm("Do you want to delete the above?")
		if confirmErr != nil {
			return &ConfigError{Err: fmt.Errorf("confirmation failed: %w", confirmErr)}
		}
		if !confirmed {
			j.reporter.Warning("Cleaning operation cancelled.")
			return nil
		}
		j.executeDeletion()
	}

	if !j.opts.DryRun && j.Counter > 0 && !j.opts.JSONMode {
		j.reporter.Info("Deleted %d item(s) totalling %s", j.Counter, FormatSize(j.Size))
	}

	if j.HasFailures() {
		return &DeletionsFailedError{Failures: j.FailedDeletions}
	}
	return nil
}

// canonicalRoot resolves the configured root to its absolute,
// symlink-free form and verifies it is an existing directory.
func canonicalRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", &ConfigError{Err: fmt.Errorf("invalid path %q: %w", root, err)}
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &ConfigError{Err: fmt.Errorf("invalid path %q: %w", root, err)}
	}
	info, err := os.Stat(canonical)
	if err != nil {
		return "", &ConfigError{Err: fmt.Errorf("invalid path %q: %w", root, err)}
	}
	if !info.IsDir() {
		return "", &ConfigError{Err: fmt.Errorf("invalid path %q: not a directory", root)}
	}
	return canonical, nil
}

// println emits a per-entry notice, routing through the progress display
// when one is active so it does not clobber the status line.
func (j *Job) println(msg string) {
	if j.progress != nil {
		j.progress.Println(msg)
		return
	}
	j.reporter.Info("%s", msg)
}

// displayStats prints per-pattern match counts and sizes, most-matched
// pattern first.
func (j *Job) displayStats() {
	j.reporter.Info("=== Statistics ===")
	for _, st := range j.sortedStats() {
		j.reporter.Info("  %s: %d item(s), %s", st.Pattern, st.Count, FormatSize(st.Size))
	}
	j.reporter.Info("==================")
}

// sortedStats returns stats ordered by count descending, then pattern.
func (j *Job) sortedStats() []ReportStat {
	stats := make([]ReportStat, 0, len(j.Stats))
	for pattern, st := range j.Stats {
		stats = append(stats, ReportStat{
			Pattern:   pattern,
			Count:     st.Count,
			Size:      st.Size,
			SizeHuman: FormatSize(st.Size),
		})
	}
	sort.Slice(stats, func(a, b int) bool {
		if stats[a].Count != stats[b].Count {
			return stats[a].Count > stats[b].Count
		}
		return stats[a].Pattern < stats[b].Pattern
	})
	return stats
}
