// Package backup manages timestamped snapshots of config files with
// retention-based pruning and restore.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/AlexK-Notable/hyprbind/pkg/validate"
)

// DefaultKeep is the number of backups retained per config file.
const DefaultKeep = 5

// timestampLayout is the filename timestamp format. Colons are replaced
// with dashes so the name stays filesystem-safe.
const timestampLayout = "2006-01-02T15-04-05"

// Info describes one backup file, constructed only by listing the
// backup directory.
type Info struct {
	Path         string
	Timestamp    time.Time
	Size         int64
	OriginalName string
}

// Manager creates, lists, restores, and prunes timestamped backups in a
// single directory.
type Manager struct {
	Dir string
}

// NewManager returns a Manager rooted at dir, defaulting to
// ~/.config/hypr/config/.backups when dir is empty.
func NewManager(dir string) *Manager {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			dir = filepath.Join(home, ".config", "hypr", "config", ".backups")
		}
	}
	return &Manager{Dir: dir}
}

// Create snapshots configPath into the backup directory as
// <name>.<timestamp>.backup, preserving the file mode. The source must
// pass rules validation (nil rules skips it) and must exist.
func (m *Manager) Create(configPath string, rules *validate.PathRules) (string, error) {
	if rules != nil {
		if err := rules.LocalPath(configPath, true); err != nil {
			return "", err
		}
	}

	if _, err := os.Stat(configPath); err != nil {
		return "", fmt.Errorf("config file not found: %s", configPath)
	}

	if err := os.MkdirAll(m.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	// The timestamp is second-granular; bump it forward until the name
	// is free so rapid saves each keep their own snapshot.
	now := time.Now()
	var backupPath string
	for {
		backupPath = filepath.Join(m.Dir,
			fmt.Sprintf("%s.%s.backup", filepath.Base(configPath), now.Format(timestampLayout)))
		if _, err := os.Lstat(backupPath); os.IsNotExist(err) {
			break
		}
		now = now.Add(time.Second)
	}

	if err := copyFile(configPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	return backupPath, nil
}

// List returns the backups for configPath, newest first. Files whose
// name does not carry a well-formed 19-character timestamp are skipped.
func (m *Manager) List(configPath string) []Info {
	entries, err := os.ReadDir(m.Dir)
	if err != nil {
		return nil
	}

	configName := filepath.Base(configPath)
	var backups []Info

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, configName+".") || !strings.HasSuffix(name, ".backup") {
			continue
		}

		timestampStr := strings.TrimSuffix(strings.TrimPrefix(name, configName+"."), ".backup")
		if len(timestampStr) != len(timestampLayout) {
			continue
		}
		timestamp, err := time.ParseInLocation(timestampLayout, timestampStr, time.Local)
		if err != nil {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:         filepath.Join(m.Dir, name),
			Timestamp:    timestamp,
			Size:         info.Size(),
			OriginalName: configName,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups
}

// Restore copies backupPath over targetPath, creating missing parent
// directories. The target must pass write-path validation (nil rules
// skips it).
func (m *Manager) Restore(backupPath, targetPath string, rules *validate.PathRules) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup file not found: %s", backupPath)
	}

	if rules != nil {
		if err := rules.WritePath(targetPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	if err := copyFile(backupPath, targetPath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	return nil
}

// Cleanup deletes all but the keep newest backups for configPath and
// returns the number deleted. Individual deletion failures are tolerated
// so one bad file doesn't block pruning the rest.
func (m *Manager) Cleanup(configPath string, keep int) int {
	backups := m.List(configPath)
	if len(backups) <= keep {
		return 0
	}

	deleted := 0
	for _, b := range backups[keep:] {
		if err := os.Remove(b.Path); err == nil {
			deleted++
		}
	}
	return deleted
}

// copyFile copies src to dst, preserving the source file mode.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
