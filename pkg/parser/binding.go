// Package parser turns Hyprland keybinding config text into the keybind
// data model. Parsing is tolerant: malformed or unrecognized lines are
// skipped, never surfaced as errors.
package parser

import (
	"strings"

	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
)

// ParseLine parses a single config line as a binding. It returns nil for
// anything that is not a well-formed bind directive: blank lines,
// comments, other config statements, or bind lines with too few fields.
func ParseLine(line string, lineNumber int, category string) *keybind.Binding {
	line = strings.TrimSpace(line)

	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	// All four bind kinds share the "bind" prefix.
	if !strings.HasPrefix(line, "bind") {
		return nil
	}

	keyword, rest, found := strings.Cut(line, "=")
	if !found {
		return nil
	}
	kind, ok := keybind.KindFromString(strings.TrimSpace(keyword))
	if !ok {
		return nil
	}

	// Fields: modifiers, key, [description,] action, params...
	parts := strings.Split(rest, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		return nil
	}

	var modifiers []string
	if parts[0] != "" {
		modifiers = strings.Fields(parts[0])
	}
	key := parts[1]

	var description, action, params string
	if kind.HasDescription() {
		if len(parts) < 4 {
			return nil
		}
		description = parts[2]
		action = parts[3]
		params = strings.Join(parts[4:], ",")
	} else {
		action = parts[2]
		params = strings.Join(parts[3:], ",")
	}

	if category == "" {
		category = keybind.DefaultCategory
	}

	return &keybind.Binding{
		Kind:        kind,
		Modifiers:   modifiers,
		Key:         key,
		Description: description,
		Action:      action,
		Params:      params,
		Line:        lineNumber,
		Category:    category,
	}
}
