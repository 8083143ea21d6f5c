// Package writer serializes a keybind.Config back to Hyprland config
// text and replaces the target file atomically, so the file is never
// observable in a half-written state.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
	"github.com/AlexK-Notable/hyprbind/pkg/validate"
)

// Generate renders cfg as config file lines: categories in sorted name
// order with their non-submap bindings under reconstructed headers,
// followed by submap blocks grouped and sorted by submap name.
func Generate(cfg *keybind.Config) []string {
	var lines []string

	names := make([]string, 0, len(cfg.Categories))
	for name := range cfg.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		var rooted []*keybind.Binding
		for _, b := range cfg.Categories[name].Bindings {
			if b.Submap == "" {
				rooted = append(rooted, b)
			}
		}
		if len(rooted) == 0 {
			continue
		}

		lines = append(lines, "", fmt.Sprintf("# ======= %s =======", name))
		for _, b := range rooted {
			lines = append(lines, FormatBinding(b))
		}
	}

	// Collect in sorted category order so repeated generations of the
	// same Config produce identical bytes.
	submaps := make(map[string][]*keybind.Binding)
	for _, name := range names {
		for _, b := range cfg.Categories[name].Bindings {
			if b.Submap != "" {
				submaps[b.Submap] = append(submaps[b.Submap], b)
			}
		}
	}

	if len(submaps) > 0 {
		lines = append(lines, "", "# ======= Submaps =======")

		submapNames := make([]string, 0, len(submaps))
		for name := range submaps {
			submapNames = append(submapNames, name)
		}
		sort.Strings(submapNames)

		for _, name := range submapNames {
			lines = append(lines, "", fmt.Sprintf("submap = %s", name))
			for _, b := range submaps[name] {
				lines = append(lines, FormatBinding(b))
			}
			lines = append(lines, "submap = reset")
		}
	}

	return lines
}

// FormatBinding renders one binding as a config line. Only the
// documented kind carries the description field.
func FormatBinding(b *keybind.Binding) string {
	mods := strings.Join(b.Modifiers, " ")
	if b.Kind.HasDescription() {
		return fmt.Sprintf("%s = %s, %s, %s, %s, %s",
			b.Kind, mods, b.Key, b.Description, b.Action, b.Params)
	}
	return fmt.Sprintf("%s = %s, %s, %s, %s",
		b.Kind, mods, b.Key, b.Action, b.Params)
}

// WriteFile atomically replaces path with the generated content for cfg.
// The content is written to a temp file in the target's directory (so
// the final rename stays on one filesystem), forced to stable storage,
// then renamed over the target. On failure the temp file is removed and
// the original is left untouched. A nil rules skips path validation.
func WriteFile(cfg *keybind.Config, path string, rules *validate.PathRules) error {
	if rules != nil {
		if err := rules.WritePath(path); err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".hyprbind_tmp_*.conf")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpPath)
	}

	content := strings.Join(Generate(cfg), "\n")
	if _, err := tmp.WriteString(content); err != nil {
		cleanup()
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// POSIX rename is atomic within a filesystem.
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
