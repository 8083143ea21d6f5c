package validate

import (
	"fmt"
	"strings"

	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
)

// isControl reports whether r is an ASCII control character (0x00-0x1F
// or DEL). Everything else, including multi-byte Unicode, is allowed
// through untouched: the boundary here is "could disrupt the IPC
// protocol", not "is non-ASCII".
func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// Sanitize strips ASCII control characters from s. Defense-in-depth
// applied immediately before IPC command construction.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if isControl(r) {
			return -1
		}
		return r
	}, s)
}

// ValidateField rejects s when it contains control characters, naming
// the offending field so the caller can surface an actionable error
// instead of silently mangling input.
func ValidateField(s, fieldName string) error {
	if strings.ContainsFunc(s, isControl) {
		return fmt.Errorf("%s contains invalid control characters", fieldName)
	}
	return nil
}

// ValidateBinding checks every string field of b that will be
// interpolated into an IPC command. The first failure wins.
func ValidateBinding(b *keybind.Binding) error {
	if err := ValidateField(b.Key, "Key"); err != nil {
		return err
	}
	if err := ValidateField(b.Action, "Action"); err != nil {
		return err
	}
	if b.Params != "" {
		if err := ValidateField(b.Params, "Parameters"); err != nil {
			return err
		}
	}
	if b.Description != "" {
		if err := ValidateField(b.Description, "Description"); err != nil {
			return err
		}
	}
	for _, mod := range b.Modifiers {
		if err := ValidateField(mod, "Modifier"); err != nil {
			return err
		}
	}
	return nil
}
