package cleaner

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// matcherSet is an ordered list of compiled glob patterns, matched against
// root-relative slash paths. Order matters: FirstMatch resolves attribution
// to the earliest declared pattern.
//
// A pattern without a separator applies at any depth, so "*.pyc" finds
// compiled files in nested directories too. Patterns that name segments
// ("build/*.o") anchor at the root as written.
type matcherSet struct {
	declared []string
	compiled []string
}

// compileSet validates every pattern up front so that a malformed glob
// fails the run before any entry is visited.
func compileSet(patterns []string) (*matcherSet, error) {
	set := &matcherSet{
		declared: make([]string, len(patterns)),
		compiled: make([]string, len(patterns)),
	}
	for i, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, &PatternError{Pattern: p, Err: doublestar.ErrBadPattern}
		}
		set.declared[i] = p
		if strings.Contains(p, "/") {
			set.compiled[i] = p
		} else {
			set.compiled[i] = "**/" + p
		}
	}
	return set, nil
}

// Match reports whether any pattern in the set matches the relative path.
func (s *matcherSet) Match(relPath string) bool {
	_, ok := s.FirstMatch(relPath)
	return ok
}

// FirstMatch returns the earliest declared pattern matching the relative
// path, in its declared (un-normalized) form.
func (s *matcherSet) FirstMatch(relPath string) (string, bool) {
	name := filepath.ToSlash(relPath)
	for i, p := range s.compiled {
		// Patterns were validated at compile time.
		if ok, _ := doublestar.Match(p, name); ok {
			return s.declared[i], true
		}
	}
	return "", false
}
