package ui

import (
	"fmt"
	"io"
	"os"
)

// clearLine erases the current terminal line before rewriting it.
const clearLine = "\r\033[2K"

// Progress renders in-place scan status updates on stderr so stdout
// stays clean for results.
type Progress struct {
	out    io.Writer
	active bool
}

// NewProgress creates a progress reporter writing to stderr.
func NewProgress() *Progress {
	return &Progress{out: os.Stderr}
}

// NewProgressTo creates a progress reporter writing to w.
func NewProgressTo(w io.Writer) *Progress {
	return &Progress{out: w}
}

// Update rewrites the status line with running counts.
func (p *Progress) Update(scanned, matched int) {
	fmt.Fprintf(p.out, "%sScanned %d items, found %d matches", clearLine, scanned, matched)
	p.active = true
}

// Println prints a full line without clobbering the status line, then
// leaves the cursor ready for the next update.
func (p *Progress) Println(msg string) {
	if p.active {
		fmt.Fprint(p.out, clearLine)
	}
	fmt.Fprintln(p.out, msg)
}

// Finish replaces the status line with a completion message.
func (p *Progress) Finish(scanned, matched int) {
	fmt.Fprintf(p.out, "%sScan complete: %d items scanned, %d matches found\n", clearLine, scanned, matched)
	p.active = false
}
