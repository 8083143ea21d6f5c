package parser

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadVariablesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variables.conf")
	content := `# Hyprland variables
$mainMod = SUPER

$term = kitty
not_a_variable = ignored
$spaced   =   some value
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	vars := LoadVariablesFile(path)
	want := map[string]string{
		"$mainMod": "SUPER",
		"$term":    "kitty",
		"$spaced":  "some value",
	}
	if len(vars) != len(want) {
		t.Fatalf("got %d variables, want %d: %v", len(vars), len(want), vars)
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("vars[%q] = %q, want %q", k, vars[k], v)
		}
	}
}

func TestLoadVariablesFileMissing(t *testing.T) {
	vars := LoadVariablesFile(filepath.Join(t.TempDir(), "nope.conf"))
	if len(vars) != 0 {
		t.Errorf("expected empty map, got %v", vars)
	}
}

func TestResolveVariables(t *testing.T) {
	vars := map[string]string{
		"$mainMod": "SUPER",
		"$term":    "kitty",
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single", "$mainMod + Q", "SUPER + Q"},
		{"multiple", "$mainMod runs $term", "SUPER runs kitty"},
		{"no match", "bind = CTRL, Q", "bind = CTRL, Q"},
		{"unknown variable untouched", "$other + Q", "$other + Q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveVariables(tt.in, vars); got != tt.want {
				t.Errorf("ResolveVariables(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolveVariablesPrefixBoundary(t *testing.T) {
	vars := map[string]string{
		"$mod":    "SUPER",
		"$modKey": "ALT",
	}

	// $mod must not partially match inside $modKey.
	got := ResolveVariables("$mod and $modKey", vars)
	if got != "SUPER and ALT" {
		t.Errorf("ResolveVariables() = %q, want %q", got, "SUPER and ALT")
	}
}
