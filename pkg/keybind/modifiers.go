package keybind

import (
	"regexp"
	"strings"
)

// validModifiers is the set of modifier names Hyprland accepts, plus the
// X11 aliases and lock keys.
var validModifiers = map[string]struct{}{
	"SUPER": {}, "SHIFT": {}, "ALT": {}, "CTRL": {},
	"MOD1": {}, "MOD2": {}, "MOD3": {}, "MOD4": {}, "MOD5": {},
	"SUPER_L": {}, "SUPER_R": {}, "SHIFT_L": {}, "SHIFT_R": {},
	"ALT_L": {}, "ALT_R": {}, "CTRL_L": {}, "CTRL_R": {},
	"CAPS": {}, "LOCK": {}, "CAPSLOCK": {}, "NUMLOCK": {},
}

// variablePattern matches config variable references like $mainMod.
var variablePattern = regexp.MustCompile(`^\$\w+$`)

// IsValidModifier reports whether mod is a known Hyprland modifier or a
// variable reference.
func IsValidModifier(mod string) bool {
	if _, ok := validModifiers[strings.ToUpper(mod)]; ok {
		return true
	}
	return variablePattern.MatchString(mod)
}
