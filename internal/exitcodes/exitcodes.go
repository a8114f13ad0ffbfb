// Package exitcodes defines the process exit codes reported by sweep.
package exitcodes

const (
	// Success means the run completed with no failures.
	Success = 0
	// GeneralError covers unexpected failures.
	GeneralError = 1
	// ConfigError means an invalid root path, unusable configuration, or
	// a failing confirmation mechanism. Nothing was deleted.
	ConfigError = 2
	// PatternError means a syntactically invalid glob pattern. Nothing
	// was deleted.
	PatternError = 3
	// DeletionsFailed means the run completed but one or more removals
	// failed.
	DeletionsFailed = 4
)
