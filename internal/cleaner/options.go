package cleaner

import "time"

// Options is the immutable configuration for a single run. It is built
// by the caller (CLI flags or config file) and never mutated by the Job.
type Options struct {
	// Root is the directory to clean. It must resolve to an existing
	// directory before the run starts.
	Root string

	// Patterns are the include globs, in attribution priority order:
	// when several patterns match the same path, the earliest declared
	// one wins the statistics attribution.
	Patterns []string

	// ExcludePatterns veto otherwise-included paths. Exclusion is
	// evaluated after inclusion and overrides any include pattern.
	ExcludePatterns []string

	// DryRun performs full discovery and aggregation without mutating
	// the filesystem.
	DryRun bool

	// SkipConfirmation bypasses the prompt. Combined with DryRun=false
	// it selects eager inline deletion during the walk.
	SkipConfirmation bool

	// IncludeSymlinks allows symlinks to be matched and removed. The
	// default policy is to not touch symlinks.
	IncludeSymlinks bool

	// RemoveBrokenSymlinks matches symlinks whose target cannot be
	// resolved, independent of the include/exclude patterns.
	RemoveBrokenSymlinks bool

	// StatsMode accumulates per-pattern match statistics.
	StatsMode bool

	// OlderThan, when non-zero, discards entries modified more recently
	// than the threshold. The boundary is inclusive: an entry whose age
	// equals the threshold exactly is matched.
	OlderThan time.Duration

	// ShowProgress emits a scan update every 100 processed entries.
	ShowProgress bool

	// JSONMode suppresses human output; the caller renders the
	// structured report instead.
	JSONMode bool
}
