package cleaner

import (
	"io/fs"
	"path/filepath"
)

// DirSizer computes the recursive size of a directory. It is an
// interface so tests can substitute a fixed-size implementation instead
// of building large directory trees.
type DirSizer interface {
	Size(path string) (int64, error)
}

// walkSizer is the default DirSizer: a best-effort recursive sum of
// regular file sizes. Unreadable entries contribute zero.
type walkSizer struct{}

func (walkSizer) Size(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			if info, infoErr := d.Info(); infoErr == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return total, err
}
