// Package preset is the single source of truth for the built-in cleanup
// pattern lists.
package preset

// Names lists the available presets in display order.
var Names = []string{"common", "python", "node", "rust", "java", "c", "go", "all"}

// composed lists the presets merged into "all", in merge order.
var composed = []string{"common", "python", "node", "rust", "java", "c", "go"}

var presets = map[string][]string{
	"common": {
		"**/.DS_Store",
		"**/.bash_history",
		"**/.python_history",
		"**/Thumbs.db",
		"**/*.swp",
		"**/*.swo",
		"**/*~",
	},
	"python": {
		"**/__pycache__",
		"**/.coverage",
		"**/.mypy_cache",
		"**/.pylint_cache",
		"**/.pytest_cache",
		"**/.ruff_cache",
		"**/.rumdl_cache",
		"**/.pyscn",
		"**/.ropeproject",
		"**/.python_history",
		"**/pip-log.txt",
		"**/*.pyc",
		"**/*.pyo",
		"**/*.egg-info",
		"**/dist",
	},
	"node": {
		"**/node_modules",
		"**/.next",
		"**/.nuxt",
		"**/.cache",
		"**/dist",
		"**/.parcel-cache",
		"**/.turbo",
		"**/.eslintcache",
		"**/coverage",
		"**/.nyc_output",
	},
	"rust": {
		"**/target",
	},
	"java": {
		"**/*.class",
		"**/target",
		"**/.gradle",
		"**/build",
		"**/.settings",
		"**/.classpath",
		"**/.project",
	},
	"c": {
		"**/*.o",
		"**/*.obj",
		"**/*.a",
		"**/*.lib",
		"**/*.so",
		"**/*.dylib",
		"**/*.dll",
	},
	"go": {
		"**/vendor",
	},
}

// Patterns returns the pattern list for a named preset. The "all" preset
// merges every other preset, deduplicated with order preserved.
func Patterns(name string) ([]string, bool) {
	if name == "all" {
		var all []string
		seen := make(map[string]bool)
		for _, p := range composed {
			for _, pattern := range presets[p] {
				if !seen[pattern] {
					seen[pattern] = true
					all = append(all, pattern)
				}
			}
		}
		return all, true
	}

	patterns, ok := presets[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(patterns))
	copy(out, patterns)
	return out, true
}

// Default returns the patterns applied when none are configured:
// common plus python, deduplicated with order preserved.
func Default() []string {
	var patterns []string
	seen := make(map[string]bool)
	for _, name := range []string{"common", "python"} {
		for _, pattern := range presets[name] {
			if !seen[pattern] {
				seen[pattern] = true
				patterns = append(patterns, pattern)
			}
		}
	}
	return patterns
}
