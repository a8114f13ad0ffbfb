package cleaner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestShouldProcess(t *testing.T) {
	j := NewJob(Options{})
	sep := string(os.PathSeparator)

	cases := []struct {
		path string
		want bool
	}{
		{".", false},
		{"..", false},
		{".." + sep + "escape.txt", false},
		{".." + sep + ".." + sep + "escape.txt", false},
		{"file.txt", true},
		{"sub" + sep + "file.txt", true},
		{"." + sep + "file.txt", true},
	}
	for _, tc := range cases {
		if got := j.shouldProcess(tc.path); got != tc.want {
			t.Errorf("shouldProcess(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestIsPathSafeContainment(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "root")
	if err := os.Mkdir(root, 0755); err != nil {
		t.Fatalf("Mkdir() error: %v", err)
	}
	canonical, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("EvalSymlinks() error: %v", err)
	}

	inside := filepath.Join(root, "inside.txt")
	writeFile(t, inside, "in")
	outside := filepath.Join(dir, "outside.txt")
	writeFile(t, outside, "out")

	j := NewJob(Options{})

	if !j.isPathSafe(inside, canonical, false) {
		t.Error("path inside the root should be safe")
	}
	if j.isPathSafe(outside, canonical, false) {
		t.Error("path outside the root must be rejected")
	}
	if !j.isPathSafe(canonical, canonical, false) {
		t.Error("the root itself is within the root")
	}
}

func TestIsPathSafeSymlinkExemption(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "root")
	if err := os.Mkdir(root, 0755); err != nil {
		t.Fatalf("Mkdir() error: %v", err)
	}
	canonical, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatalf("EvalSymlinks() error: %v", err)
	}

	// The link lives inside the root but points outside it. Canonicalizing
	// it would test the target, not the link, so the guard exempts it.
	outside := filepath.Join(dir, "outside.txt")
	writeFile(t, outside, "out")
	link := filepath.Join(root, "link.txt")
	if err := os.Symlink(outside, link); err != nil {
		t.Fatalf("Symlink() error: %v", err)
	}

	j := NewJob(Options{})
	if !j.isPathSafe(link, canonical, true) {
		t.Error("symlinks are exempt from canonicalization-based rejection")
	}
}

func TestIsPathSafeVanishedEntry(t *testing.T) {
	dir := t.TempDir()
	canonical, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatalf("EvalSymlinks() error: %v", err)
	}

	j := NewJob(Options{})
	gone := filepath.Join(canonical, "vanished.txt")
	if j.isPathSafe(gone, canonical, false) {
		t.Error("an entry that cannot be canonicalized cannot be verified, so it is skipped")
	}
}
