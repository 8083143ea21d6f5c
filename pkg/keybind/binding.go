// Package keybind provides the data model for Hyprland keybinding
// configurations: bindings, categories, and the aggregate Config with
// its constant-time conflict index.
package keybind

import (
	"sort"
	"strings"
)

// Kind identifies the Hyprland bind directive a binding was declared with.
type Kind string

const (
	KindDocumented Kind = "bindd"  // carries a description field
	KindStandard   Kind = "bind"   // plain binding
	KindRepeat     Kind = "bindel" // repeats while held
	KindMouse      Kind = "bindm"  // mouse binding
)

// KindFromString returns the Kind for a bind directive keyword.
func KindFromString(s string) (Kind, bool) {
	switch Kind(s) {
	case KindDocumented, KindStandard, KindRepeat, KindMouse:
		return Kind(s), true
	}
	return "", false
}

// HasDescription reports whether lines of this kind carry a description
// field between the key and the action.
func (k Kind) HasDescription() bool {
	return k == KindDocumented
}

// Binding is a single keybinding rule. Bindings are value objects owned
// by their Config; Line and Category are diagnostic/grouping metadata
// and do not participate in conflict identity.
type Binding struct {
	Kind        Kind
	Modifiers   []string
	Key         string
	Description string
	Action      string
	Params      string
	Submap      string // empty means the root (global) map
	Line        int    // 1-based source line, 0 if synthetic
	Category    string
}

// ConflictKey identifies the input slot a binding occupies. Two bindings
// with the same key occupy the same slot regardless of their action.
// Modifier order is normalized so SHIFT+SUPER and SUPER+SHIFT collide.
type ConflictKey struct {
	Modifiers string
	Key       string
	Submap    string
}

// ConflictKey derives the binding's slot identity.
func (b *Binding) ConflictKey() ConflictKey {
	mods := make([]string, len(b.Modifiers))
	copy(mods, b.Modifiers)
	sort.Strings(mods)
	return ConflictKey{
		Modifiers: strings.Join(mods, "+"),
		Key:       b.Key,
		Submap:    b.Submap,
	}
}

// ConflictsWith reports whether two bindings occupy the same input slot.
func (b *Binding) ConflictsWith(other *Binding) bool {
	return b.ConflictKey() == other.ConflictKey()
}

// DisplayName renders the binding as a human-readable chord, e.g.
// "Super + Shift + Q".
func (b *Binding) DisplayName() string {
	readable := make([]string, 0, len(b.Modifiers)+1)
	for _, mod := range b.Modifiers {
		switch mod {
		case "$mainMod", "SUPER":
			readable = append(readable, "Super")
		case "SHIFT":
			readable = append(readable, "Shift")
		case "CTRL":
			readable = append(readable, "Ctrl")
		case "ALT":
			readable = append(readable, "Alt")
		default:
			readable = append(readable, mod)
		}
	}
	if len(readable) == 0 {
		return b.Key
	}
	return strings.Join(readable, " + ") + " + " + b.Key
}
