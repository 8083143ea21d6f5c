// Package validate holds the security boundary checks shared by every
// component that touches the filesystem or the Hyprland IPC socket:
// allow-list path validation, the dangerous-action advisory, and
// control-character sanitization for IPC-bound strings.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// traversalPattern matches directory traversal attempts in relative paths.
var traversalPattern = regexp.MustCompile(`(^|[/\\])\.\.([/\\]|$)`)

// remoteAllowPatterns is the allow-list of filename shapes accepted for
// config content fetched from outside the machine. Anything else is
// rejected before it can influence a local path.
var remoteAllowPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\.?config/hypr/.*\.conf$`),
	regexp.MustCompile(`(?i)^hypr/.*\.conf$`),
	regexp.MustCompile(`(?i)^\.hypr/.*\.conf$`),
	regexp.MustCompile(`(?i)^[^/]*keybinds?\.conf$`),
	regexp.MustCompile(`(?i)^[^/]*binds?\.conf$`),
	regexp.MustCompile(`(?i)^[^/]*hyprland\.conf$`),
}

// PathRules is the allow-list of directories local config operations may
// touch. Construct one at startup with NewPathRules and pass it to the
// components that need it; there is no ambient global state beyond the
// lazily built package default used by convenience callers.
type PathRules struct {
	AllowedDirs []string
}

// NewPathRules builds the allow-list from the environment:
// $XDG_CONFIG_HOME/hypr when set, ~/.config/hypr always, plus any
// colon-separated entries in $HYPRBIND_CONFIG_DIRS as an escape hatch
// for non-standard setups.
func NewPathRules() *PathRules {
	var dirs []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "hypr"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "hypr"))
	}
	for _, d := range strings.Split(os.Getenv("HYPRBIND_CONFIG_DIRS"), ":") {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, d)
		}
	}

	return &PathRules{AllowedDirs: dirs}
}

var (
	defaultRules   *PathRules
	defaultRulesMu sync.Mutex
)

// Default returns the process-wide rules, building them from the
// environment on first use.
func Default() *PathRules {
	defaultRulesMu.Lock()
	defer defaultRulesMu.Unlock()
	if defaultRules == nil {
		defaultRules = NewPathRules()
	}
	return defaultRules
}

// ResetDefault discards the cached default rules so the next Default
// call re-reads the environment. Intended for test isolation.
func ResetDefault() {
	defaultRulesMu.Lock()
	defer defaultRulesMu.Unlock()
	defaultRules = nil
}

// LocalPath validates that path resolves (following symlinks) to a
// descendant of an allow-listed directory. When mustExist is true the
// resolved path must already exist.
func (r *PathRules) LocalPath(path string, mustExist bool) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("path validation error for %s: %w", path, err)
	}

	if mustExist {
		if _, err := os.Stat(resolved); err != nil {
			return fmt.Errorf("path does not exist: %s", path)
		}
	}

	for _, allowed := range r.AllowedDirs {
		allowedResolved, err := resolvePath(allowed)
		if err != nil {
			continue
		}
		if isWithin(allowedResolved, resolved) {
			return nil
		}
	}

	return fmt.Errorf("path %s is outside allowed config directories: %s",
		path, strings.Join(r.AllowedDirs, ", "))
}

// WritePath validates that path is safe to write: inside the allow-list,
// with an existing, writable parent directory.
func (r *PathRules) WritePath(path string) error {
	if err := r.LocalPath(path, false); err != nil {
		return err
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("path validation error for %s: %w", path, err)
	}

	parent := filepath.Dir(resolved)
	info, err := os.Stat(parent)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("parent directory does not exist: %s", parent)
	}
	if unix.Access(parent, unix.W_OK) != nil {
		return fmt.Errorf("cannot write to directory: %s", parent)
	}

	return nil
}

// RemotePath validates a relative path received from an untrusted remote
// source (e.g. a community profile listing). It is the sole defense
// against traversal for imported config text, so it rejects anything
// not matching the expected Hyprland config filename shapes.
func RemotePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if traversalPattern.MatchString(path) || path == ".." {
		return fmt.Errorf("path contains directory traversal")
	}
	if strings.HasPrefix(path, "/") {
		return fmt.Errorf("absolute paths not allowed")
	}
	for _, p := range remoteAllowPatterns {
		if p.MatchString(path) {
			return nil
		}
	}
	return fmt.Errorf("path %q doesn't match expected Hyprland config patterns", path)
}

// resolvePath returns the absolute, symlink-resolved form of path. For a
// path that does not exist yet, the deepest existing ancestor is
// resolved and the remainder rejoined, matching what a subsequent create
// would produce.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	remainder := ""
	current := abs
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			return filepath.Join(resolved, remainder), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(current)
		if parent == current {
			return abs, nil
		}
		remainder = filepath.Join(filepath.Base(current), remainder)
		current = parent
	}
}

// isWithin reports whether target equals dir or is a descendant of it.
func isWithin(dir, target string) bool {
	rel, err := filepath.Rel(dir, target)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
