package cleaner

import (
	"io/fs"
	"os"
)

// executeDeletion removes all buffered targets. Individual failures are
// recorded and never abort the batch: every remaining target is still
// attempted.
func (j *Job) executeDeletion() {
	targets := j.targets
	j.targets = nil

	for _, t := range targets {
		if !j.opts.DryRun {
			j.removePath(t.path, t.info)
		}
	}

	if j.HasFailures() {
		j.reporter.Error("=== Deletion Failures ===")
		for _, f := range j.FailedDeletions {
			j.reporter.Error("  %s: %s", f.Path, f.Error)
		}
		j.reporter.Error("Total failures: %d", len(j.FailedDeletions))
	}
}

// removePath removes a single entry using its cached metadata:
// directories recursively, files and symlinks singly. Unrecognized file
// types are never removed. Reports whether the entry is gone.
//
// A not-exist error counts as success: a directory deleted earlier in
// the same batch may have already taken its children with it.
func (j *Job) removePath(path string, info fs.FileInfo) bool {
	var err error
	switch {
	case info.IsDir():
		err = os.RemoveAll(path)
	case info.Mode().IsRegular() || info.Mode()&fs.ModeSymlink != 0:
		err = os.Remove(path)
	default:
		j.reporter.Warning("skipping unknown file type: %s", path)
		return false
	}

	if err != nil && !os.IsNotExist(err) {
		j.FailedDeletions = append(j.FailedDeletions, Failure{Path: path, Error: err.Error()})
		j.reporter.Error("Failed to remove %s: %v", path, err)
		return false
	}
	return true
}
