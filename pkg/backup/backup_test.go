package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBackupFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("snapshot"), 0o644))
}

func TestCreateBackup(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "keybinds.conf")
	require.NoError(t, os.WriteFile(configPath, []byte("bind = SUPER, Q, killactive\n"), 0o600))

	m := NewManager(filepath.Join(dir, ".backups"))
	backupPath, err := m.Create(configPath, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(backupPath)
	require.NoError(t, err)
	assert.Equal(t, "bind = SUPER, Q, killactive\n", string(data))

	// Source mode is preserved.
	info, err := os.Stat(backupPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	backups := m.List(configPath)
	require.Len(t, backups, 1)
	assert.Equal(t, "keybinds.conf", backups[0].OriginalName)
}

func TestCreateBackupSameSecondKeepsBoth(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "keybinds.conf")
	require.NoError(t, os.WriteFile(configPath, []byte("first\n"), 0o644))

	m := NewManager(filepath.Join(dir, ".backups"))
	first, err := m.Create(configPath, nil)
	require.NoError(t, err)

	// A second snapshot within the same second must not clobber the
	// first.
	require.NoError(t, os.WriteFile(configPath, []byte("second\n"), 0o644))
	second, err := m.Create(configPath, nil)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(data))

	assert.Len(t, m.List(configPath), 2)
}

func TestCreateBackupMissingSource(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(filepath.Join(dir, ".backups"))

	_, err := m.Create(filepath.Join(dir, "nope.conf"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListSortsNewestFirstAndSkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeBackupFile(t, dir, "keybinds.conf.2025-01-02T10-00-00.backup")
	writeBackupFile(t, dir, "keybinds.conf.2025-06-15T08-30-00.backup")
	writeBackupFile(t, dir, "keybinds.conf.2025-03-10T23-59-59.backup")
	// Malformed entries are skipped silently.
	writeBackupFile(t, dir, "keybinds.conf.notatimestamp.backup")
	writeBackupFile(t, dir, "keybinds.conf.2025-99-99T99-99-99.backup")
	writeBackupFile(t, dir, "keybinds.conf.backup")
	writeBackupFile(t, dir, "other.conf.2025-06-15T08-30-00.backup")

	m := NewManager(dir)
	backups := m.List("/some/where/keybinds.conf")
	require.Len(t, backups, 3)

	assert.Equal(t, time.Date(2025, 6, 15, 8, 30, 0, 0, time.Local), backups[0].Timestamp)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local), backups[1].Timestamp)
	assert.Equal(t, time.Date(2025, 1, 2, 10, 0, 0, 0, time.Local), backups[2].Timestamp)
}

func TestListMissingDir(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, m.List("keybinds.conf"))
}

func TestRestore(t *testing.T) {
	dir := t.TempDir()
	backupPath := filepath.Join(dir, "keybinds.conf.2025-06-15T08-30-00.backup")
	require.NoError(t, os.WriteFile(backupPath, []byte("restored content"), 0o644))

	m := NewManager(dir)
	target := filepath.Join(dir, "deep", "nested", "keybinds.conf")
	require.NoError(t, m.Restore(backupPath, target, nil))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "restored content", string(data))
}

func TestRestoreMissingBackup(t *testing.T) {
	m := NewManager(t.TempDir())
	err := m.Restore(filepath.Join(m.Dir, "nope.backup"), filepath.Join(m.Dir, "out.conf"), nil)
	require.Error(t, err)
}

func TestCleanupKeepsNewest(t *testing.T) {
	dir := t.TempDir()
	// Eight backups a minute apart; keep the three newest.
	for i := 0; i < 8; i++ {
		writeBackupFile(t, dir, fmt.Sprintf("keybinds.conf.2025-06-15T08-%02d-00.backup", i))
	}

	m := NewManager(dir)
	deleted := m.Cleanup("keybinds.conf", 3)
	assert.Equal(t, 5, deleted)

	remaining := m.List("keybinds.conf")
	require.Len(t, remaining, 3)
	for i, minute := range []int{7, 6, 5} {
		assert.Equal(t, minute, remaining[i].Timestamp.Minute())
	}
}

func TestCleanupUnderLimit(t *testing.T) {
	dir := t.TempDir()
	writeBackupFile(t, dir, "keybinds.conf.2025-06-15T08-00-00.backup")

	m := NewManager(dir)
	assert.Equal(t, 0, m.Cleanup("keybinds.conf", 5))
	assert.Len(t, m.List("keybinds.conf"), 1)
}
