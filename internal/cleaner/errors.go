package cleaner

import "fmt"

// PatternError reports a syntactically invalid glob pattern. It is
// returned before the walk begins, so no filesystem mutation can have
// occurred.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid glob pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// ConfigError reports a fatal pre-run condition: an invalid root path or
// a failing confirmation mechanism.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// DeletionsFailedError reports that one or more removals failed after a
// run completed. Every successful deletion that occurred still counts.
type DeletionsFailedError struct {
	Failures []Failure
}

func (e *DeletionsFailedError) Error() string {
	return fmt.Sprintf("%d deletion(s) failed", len(e.Failures))
}
