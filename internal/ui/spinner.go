package ui

import (
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
)

// WithSpinner runs a function with a spinner. In CI mode or when stdout
// is not a terminal (piped output), runs without a spinner so nothing
// leaks into the stream.
func WithSpinner(title string, fn func() error) error {
	if IsCI() || !isatty.IsTerminal(os.Stdout.Fd()) {
		return fn()
	}
	var actionErr error
	err := spinner.New().
		Title(title).
		Action(func() {
			actionErr = fn()
		}).
		Run()
	if err != nil {
		return err
	}
	return actionErr
}
