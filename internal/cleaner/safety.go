package cleaner

import (
	"os"
	"path/filepath"
	"strings"
)

// shouldProcess applies the lexical path filter: it rejects "." and ".."
// and any path whose relative form escapes upward, before any OS call.
// This catches degenerate walk artifacts and pattern-induced traversal
// attempts such as "../../*.txt".
func (j *Job) shouldProcess(path string) bool {
	if path == "." || path == ".." {
		return false
	}
	if strings.HasPrefix(path, ".."+string(os.PathSeparator)) {
		j.reporter.Warning("skipping %s", path)
		return false
	}
	return true
}

// isPathSafe verifies that a candidate canonicalizes to a descendant of
// the canonicalized root.
//
// Symlinks are accepted unconditionally here: canonicalizing a symlink
// follows it to its target, which may legitimately live outside the root
// even though the link itself is inside. Symlink handling is governed by
// the IncludeSymlinks flag, not by this guard.
//
// A canonicalization failure (entry vanished mid-walk) means the path
// cannot be verified; the entry is skipped silently.
func (j *Job) isPathSafe(path, root string, isSymlink bool) bool {
	if isSymlink {
		return true
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return false
	}

	if canonical != root && !strings.HasPrefix(canonical, root+string(os.PathSeparator)) {
		j.reporter.Warning("Skipping path outside working directory: %s", path)
		return false
	}
	return true
}
