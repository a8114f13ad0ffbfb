// Package cli wires the cleaning engine to cobra commands and maps run
// outcomes to process exit codes.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sweeplab/sweep/internal/cleaner"
	"github.com/sweeplab/sweep/internal/ui"
)

// App is the dependency container for all CLI commands.
type App struct {
	rootCmd *cobra.Command
	version string
	commit  string
	date    string
	output  *ui.Output
	stdout  io.Writer
	confirm cleaner.Confirmer

	// Root command flags.
	path            string
	patterns        []string
	excludes        []string
	presetName      string
	configPath      string
	noConfig        bool
	dryRun          bool
	yes             bool
	includeSymlinks bool
	removeBroken    bool
	statsMode       bool
	olderThan       string
	showProgress    bool
	jsonMode        bool
}

// NewApp creates the root command and registers all subcommands.
func NewApp(version, commit, date string) *App {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		output:  ui.NewOutput(),
		stdout:  os.Stdout,
		confirm: ui.Confirm,
	}

	root := &cobra.Command{
		Use:   "sweep",
		Short: "Remove build artifacts, caches, and other detritus",
		Long: "Walks a directory tree, matches entries against glob patterns,\n" +
			"and removes them after confirmation. Deletion never escapes the\n" +
			"resolved root directory.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if os.Getenv("SWEEP_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
				app.output.SetNoColor(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runClean(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.Flags()
	flags.StringVar(&app.path, "path", ".", "directory to clean")
	flags.StringArrayVarP(&app.patterns, "pattern", "p", nil, "include glob pattern (repeatable, order sets attribution priority)")
	flags.StringArrayVarP(&app.excludes, "exclude", "x", nil, "exclude glob pattern (repeatable, overrides includes)")
	flags.StringVar(&app.presetName, "preset", "", "use a named preset pattern list (see 'sweep presets')")
	flags.BoolVarP(&app.dryRun, "dry-run", "n", false, "discover and report matches without deleting")
	flags.BoolVarP(&app.yes, "yes", "y", false, "skip the confirmation prompt")
	flags.BoolVar(&app.includeSymlinks, "include-symlinks", false, "allow symlinks to be matched and removed")
	flags.BoolVar(&app.removeBroken, "remove-broken-symlinks", false, "remove symlinks whose target is missing")
	flags.BoolVarP(&app.statsMode, "stats", "s", false, "show per-pattern match statistics")
	flags.StringVar(&app.olderThan, "older-than", "", "only match entries at least this old (e.g. 30d, 24h)")
	flags.BoolVar(&app.showProgress, "progress", false, "show scan progress")
	flags.BoolVar(&app.jsonMode, "json", false, "emit a machine-readable JSON report")
	flags.StringVarP(&app.configPath, "config", "c", "", "config file to use instead of discovery")
	flags.BoolVar(&app.noConfig, "no-config", false, "ignore config files entirely")

	root.AddCommand(
		app.newInitCmd(),
		app.newPresetsCmd(),
		app.newVersionCmd(),
	)

	app.rootCmd = root
	return app
}

// Execute runs the root command.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			a.output.Info("sweep %s (commit: %s, built: %s)", a.version, a.commit, a.date)
		},
	}
}

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}
