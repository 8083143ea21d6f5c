// Package dotfiles detects whether a config file is managed by an
// external dotfile tool, so the save path can warn that a direct write
// may be overwritten on the next apply.
package dotfiles

import (
	"os/exec"
	"strings"
)

// ChezmoiInstalled reports whether chezmoi is available on PATH.
func ChezmoiInstalled() bool {
	_, err := exec.LookPath("chezmoi")
	return err == nil
}

// ChezmoiManaged reports whether path is managed by chezmoi. False when
// chezmoi is not installed or the lookup fails.
func ChezmoiManaged(path string) bool {
	return ChezmoiSourcePath(path) != ""
}

// ChezmoiSourcePath returns the chezmoi source file for a managed path,
// or "" when the file is unmanaged or chezmoi is unavailable.
func ChezmoiSourcePath(path string) string {
	if !ChezmoiInstalled() {
		return ""
	}

	out, err := exec.Command("chezmoi", "source-path", path).Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
