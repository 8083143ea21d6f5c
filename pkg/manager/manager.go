// Package manager is the high-level entry point for editing a keybinds
// config: conflict-checked mutation, the save path with retention-managed
// backups, and change notification for interested observers.
package manager

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/AlexK-Notable/hyprbind/pkg/backup"
	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
	"github.com/AlexK-Notable/hyprbind/pkg/parser"
	"github.com/AlexK-Notable/hyprbind/pkg/validate"
	"github.com/AlexK-Notable/hyprbind/pkg/writer"
)

// Listener observes configuration changes. kind is one of "add",
// "remove", "update", "save", or "restore".
type Listener func(kind string, b *keybind.Binding)

// Options configures a Manager.
type Options struct {
	ConfigPath string
	BackupDir  string
	BackupKeep int
	Rules      *validate.PathRules
	Logger     *logrus.Logger
}

// Manager owns a loaded Config and mediates every edit against it.
// Not safe for concurrent use without external locking.
type Manager struct {
	configPath string
	rules      *validate.PathRules
	backups    *backup.Manager
	backupKeep int
	logger     *logrus.Logger

	cfg *keybind.Config

	listeners  map[int]Listener
	nextHandle int
}

// New builds a Manager. ConfigPath defaults to
// ~/.config/hypr/config/keybinds.conf, BackupKeep to backup.DefaultKeep.
func New(opts Options) *Manager {
	configPath := opts.ConfigPath
	if configPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configPath = filepath.Join(home, ".config", "hypr", "config", "keybinds.conf")
		}
	}
	keep := opts.BackupKeep
	if keep <= 0 {
		keep = backup.DefaultKeep
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.New()
	}

	return &Manager{
		configPath: configPath,
		rules:      opts.Rules,
		backups:    backup.NewManager(opts.BackupDir),
		backupKeep: keep,
		logger:     logger,
		listeners:  make(map[int]Listener),
	}
}

// ConfigPath returns the path this manager edits.
func (m *Manager) ConfigPath() string { return m.configPath }

// Config returns the loaded configuration, nil before Load.
func (m *Manager) Config() *keybind.Config { return m.cfg }

// Load parses the config file, replacing any previously loaded state.
func (m *Manager) Load() (*keybind.Config, error) {
	cfg, err := parser.ParseFile(m.configPath, m.rules)
	if err != nil {
		return nil, err
	}
	m.cfg = cfg
	m.logger.WithField("path", m.configPath).
		Debugf("Loaded %d bindings", len(cfg.AllBindings()))
	return cfg, nil
}

// AddBinding inserts b after checking its input slot is free. A conflict
// yields a failed result carrying the occupying binding.
func (m *Manager) AddBinding(b *keybind.Binding) *keybind.OperationResult {
	if m.cfg == nil {
		return keybind.Fail("config not loaded")
	}

	if conflicts := keybind.FindConflicts(b, m.cfg); len(conflicts) > 0 {
		return &keybind.OperationResult{
			Success:   false,
			Message:   fmt.Sprintf("binding conflicts with %d existing binding(s)", len(conflicts)),
			Conflicts: conflicts,
		}
	}

	m.cfg.Add(b)
	m.notify("add", b)
	return keybind.OK("binding added")
}

// RemoveBinding deletes the binding occupying b's input slot. b itself
// need not be a loaded instance; the occupant is resolved through the
// conflict index.
func (m *Manager) RemoveBinding(b *keybind.Binding) *keybind.OperationResult {
	if m.cfg == nil {
		return keybind.Fail("config not loaded")
	}

	occupant := m.cfg.FindConflict(b)
	if occupant == nil {
		return keybind.Fail("binding not found")
	}

	m.cfg.Remove(occupant)
	m.notify("remove", occupant)
	return keybind.OK("binding removed")
}

// UpdateBinding replaces oldB with newB, rolling the removal back when
// the insertion fails (e.g. the new chord conflicts).
func (m *Manager) UpdateBinding(oldB, newB *keybind.Binding) *keybind.OperationResult {
	if m.cfg == nil {
		return keybind.Fail("config not loaded")
	}

	if res := m.RemoveBinding(oldB); !res.Success {
		return res
	}

	if res := m.AddBinding(newB); !res.Success {
		m.cfg.Add(oldB)
		return &keybind.OperationResult{
			Success:   false,
			Message:   fmt.Sprintf("update failed: %s; changes rolled back", res.Message),
			Conflicts: res.Conflicts,
		}
	}

	m.notify("update", newB)
	return keybind.OK("binding updated")
}

// Save persists the loaded config: snapshot the current file, write the
// new content atomically, then prune old backups down to the retention
// count. Retention is an invariant of the save path, not an opt-in.
func (m *Manager) Save() error {
	if m.cfg == nil {
		return fmt.Errorf("config not loaded")
	}

	if _, err := os.Stat(m.configPath); err == nil {
		if _, err := m.backups.Create(m.configPath, m.rules); err != nil {
			return fmt.Errorf("backup before save failed: %w", err)
		}
	}

	if err := writer.WriteFile(m.cfg, m.configPath, m.rules); err != nil {
		return err
	}

	if deleted := m.backups.Cleanup(m.configPath, m.backupKeep); deleted > 0 {
		m.logger.Debugf("Pruned %d old backup(s)", deleted)
	}

	m.notify("save", nil)
	return nil
}

// RestoreBackup replaces the config file with a backup snapshot and
// reloads.
func (m *Manager) RestoreBackup(backupPath string) error {
	if err := m.backups.Restore(backupPath, m.configPath, m.rules); err != nil {
		return err
	}
	if _, err := m.Load(); err != nil {
		return err
	}
	m.notify("restore", nil)
	return nil
}

// Backups exposes the retention manager for listing and pruning.
func (m *Manager) Backups() *backup.Manager { return m.backups }

// Subscribe registers a change listener and returns a handle for
// Unsubscribe.
func (m *Manager) Subscribe(l Listener) int {
	m.nextHandle++
	m.listeners[m.nextHandle] = l
	return m.nextHandle
}

// Unsubscribe removes a previously registered listener.
func (m *Manager) Unsubscribe(handle int) {
	delete(m.listeners, handle)
}

// notify fans a change out to every listener. A panicking listener is
// logged and skipped so it cannot prevent the rest from running.
func (m *Manager) notify(kind string, b *keybind.Binding) {
	for handle, l := range m.listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					m.logger.WithField("listener", handle).
						Errorf("Change listener panicked: %v", r)
				}
			}()
			l(kind, b)
		}()
	}
}
