package parser

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
	"github.com/AlexK-Notable/hyprbind/pkg/validate"
)

// categoryPattern extracts the free text from a category header comment,
// e.g. "# ======= Window Management =======". The exact run length of
// '=' is not significant.
var categoryPattern = regexp.MustCompile(`=+\s+(.+?)\s+=+`)

// ParseFile parses a keybinds config file into a Config. The path must
// pass rules validation (nil rules skips the check, for tests working in
// temp dirs). A missing file yields an empty Config, not an error.
// Variables are loaded from sibling variables.conf/defaults.conf files.
func ParseFile(path string, rules *validate.PathRules) (*keybind.Config, error) {
	cfg := keybind.NewConfig()
	cfg.FilePath = path

	if rules != nil {
		if err := rules.LocalPath(path, false); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	cfg.Variables = LoadVariablesDir(filepath.Dir(path))

	parseInto(cfg, string(data))
	return cfg, nil
}

// ParseString parses keybindings from an in-memory string. No path
// validation and no variable loading happens here.
func ParseString(content string) *keybind.Config {
	cfg := keybind.NewConfig()
	parseInto(cfg, content)
	return cfg
}

// parseInto scans content line by line, tracking the current category
// header and the current submap block, and adds every parsed binding to
// cfg.
func parseInto(cfg *keybind.Config, content string) {
	currentCategory := keybind.DefaultCategory
	currentSubmap := ""

	for i, line := range strings.Split(content, "\n") {
		stripped := strings.TrimSpace(line)

		if strings.HasPrefix(stripped, "#") && strings.Contains(stripped, "==") {
			if m := categoryPattern.FindStringSubmatch(stripped); m != nil {
				currentCategory = strings.TrimSpace(m[1])
			}
		}

		// submap = <name> opens a block, submap = reset closes it.
		if keyword, rest, found := strings.Cut(stripped, "="); found &&
			strings.TrimSpace(keyword) == "submap" {
			name := strings.TrimSpace(rest)
			if name == "reset" {
				currentSubmap = ""
			} else if name != "" {
				currentSubmap = name
			}
			continue
		}

		if b := ParseLine(line, i+1, currentCategory); b != nil {
			b.Submap = currentSubmap
			cfg.Add(b)
		}
	}
}
