package cleaner

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// progressInterval is how many walked entries pass between scan updates.
const progressInterval = 100

// collect walks the tree under root and routes every qualifying entry
// into match handling. Unreadable entries never abort the walk.
func (j *Job) collect(root string, include, exclude *matcherSet) {
	processed := 0

	// WalkDir's error return is always nil here: per-entry errors are
	// swallowed and the walk continues.
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		if j.progress != nil {
			processed++
			if processed%progressInterval == 0 {
				j.progress.Update(processed, j.Counter)
			}
		}

		// Patterns and lexical filters see the root-relative path; the
		// root itself relativizes to "." and is never a candidate.
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}

		if !j.shouldProcess(rel) {
			return nil
		}

		isSymlink := d.Type()&fs.ModeSymlink != 0

		// Broken symlinks are matched by policy, not by pattern.
		if j.opts.RemoveBrokenSymlinks && isSymlink {
			if _, statErr := os.Stat(path); statErr != nil {
				return j.handleMatch(path, brokenSymlinkTag)
			}
		}

		if !include.Match(rel) {
			return nil
		}

		// Exclusion overrides any include pattern.
		if exclude != nil && exclude.Match(rel) {
			j.println("Excluded: " + path)
			return nil
		}

		if isSymlink && !j.opts.IncludeSymlinks {
			return nil
		}

		if !j.isPathSafe(path, root, isSymlink) {
			return nil
		}

		pattern, ok := include.FirstMatch(rel)
		if !ok {
			pattern = unknownTag
		}
		return j.handleMatch(path, pattern)
	})

	if j.progress != nil {
		j.progress.Finish(processed, j.Counter)
	}
}

// handleMatch processes a qualifying entry: fetch metadata once, apply
// the age filter, accumulate aggregates, then either delete eagerly or
// buffer the target for the bulk phase.
//
// The age filter runs before any accumulation, so discarded-as-too-recent
// entries never touch the counter or totals.
func (j *Job) handleMatch(path, pattern string) error {
	info, err := os.Lstat(path)
	if err != nil {
		j.reporter.Error("Failed to get metadata for %s: %v", path, err)
		return nil
	}

	if j.opts.OlderThan > 0 && time.Since(info.ModTime()) < j.opts.OlderThan {
		return nil
	}

	var itemSize int64
	switch {
	case info.Mode().IsRegular():
		itemSize = info.Size()
	case info.IsDir():
		itemSize, _ = j.sizer.Size(path)
	}

	j.Size += itemSize
	j.Counter++

	if j.opts.StatsMode {
		st := j.Stats[pattern]
		st.Count++
		st.Size += itemSize
		j.Stats[pattern] = st
	}

	if j.opts.JSONMode {
		j.Matched = append(j.Matched, MatchedItem{
			Path:    path,
			Size:    itemSize,
			Pattern: pattern,
		})
	}

	if j.mode == deleteEager {
		removed := j.removePath(path, info)
		if !j.opts.JSONMode {
			j.println("Deleted: " + path)
		}
		if removed && info.IsDir() {
			// The subtree is gone; don't try to descend into it.
			return fs.SkipDir
		}
		return nil
	}

	j.targets = append(j.targets, target{path: path, info: info})
	if !j.opts.JSONMode {
		j.println("Matched: " + path)
	}
	return nil
}
