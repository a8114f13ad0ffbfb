package preset

import "testing"

func TestAllNamesResolve(t *testing.T) {
	for _, name := range Names {
		patterns, ok := Patterns(name)
		if !ok {
			t.Errorf("Patterns(%q) should resolve", name)
			continue
		}
		if len(patterns) == 0 {
			t.Errorf("preset %q should have at least one pattern", name)
		}
	}
}

func TestUnknownPreset(t *testing.T) {
	if _, ok := Patterns("nonexistent"); ok {
		t.Error("Patterns(nonexistent) should not resolve")
	}
	if _, ok := Patterns(""); ok {
		t.Error("Patterns(\"\") should not resolve")
	}
}

func TestPythonPreset(t *testing.T) {
	patterns, _ := Patterns("python")
	if !contains(patterns, "**/__pycache__") {
		t.Error("python preset should include **/__pycache__")
	}
	if !contains(patterns, "**/*.pyc") {
		t.Error("python preset should include **/*.pyc")
	}
}

func TestNodePreset(t *testing.T) {
	patterns, _ := Patterns("node")
	if !contains(patterns, "**/node_modules") {
		t.Error("node preset should include **/node_modules")
	}
}

func TestRustPreset(t *testing.T) {
	patterns, _ := Patterns("rust")
	if !contains(patterns, "**/target") {
		t.Error("rust preset should include **/target")
	}
}

func TestAllPresetMergesOthers(t *testing.T) {
	all, _ := Patterns("all")

	for _, want := range []string{"**/__pycache__", "**/node_modules", "**/target", "**/.DS_Store"} {
		if !contains(all, want) {
			t.Errorf("all preset should include %s", want)
		}
	}
}

func TestAllPresetNoDuplicates(t *testing.T) {
	all, _ := Patterns("all")
	assertNoDuplicates(t, all)
}

func TestDefaultPatterns(t *testing.T) {
	defaults := Default()
	if len(defaults) == 0 {
		t.Fatal("Default() should not be empty")
	}
	assertNoDuplicates(t, defaults)
}

func TestPatternsReturnsCopy(t *testing.T) {
	first, _ := Patterns("rust")
	first[0] = "mutated"
	second, _ := Patterns("rust")
	if second[0] != "**/target" {
		t.Error("mutating a returned slice must not alter the preset table")
	}
}

func contains(patterns []string, want string) bool {
	for _, p := range patterns {
		if p == want {
			return true
		}
	}
	return false
}

func assertNoDuplicates(t *testing.T, patterns []string) {
	t.Helper()
	seen := make(map[string]bool)
	for _, p := range patterns {
		if seen[p] {
			t.Errorf("duplicate pattern %q", p)
		}
		seen[p] = true
	}
}
