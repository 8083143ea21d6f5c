// Package settings loads hyprbind's own application settings from
// ~/.config/hyprbind, accepting either hyprbind.toml or hyprbind.yml.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings are user-tunable knobs feeding the path rules, the backup
// manager, and the config manager.
type Settings struct {
	ConfigPath  string   `toml:"config_path,omitempty" yaml:"config_path,omitempty" json:"config_path,omitempty" jsonschema:"description=Path to the keybinds config file"`
	BackupDir   string   `toml:"backup_dir,omitempty" yaml:"backup_dir,omitempty" json:"backup_dir,omitempty" jsonschema:"description=Directory for timestamped config backups"`
	BackupKeep  int      `toml:"backup_keep,omitempty" yaml:"backup_keep,omitempty" json:"backup_keep,omitempty" jsonschema:"description=Number of backups retained per config file,default=5"`
	AllowedDirs []string `toml:"allowed_dirs,omitempty" yaml:"allowed_dirs,omitempty" json:"allowed_dirs,omitempty" jsonschema:"description=Extra directories config operations may touch"`
}

// Dir returns hyprbind's settings directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "hyprbind")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "hyprbind")
}

// Load reads settings from hyprbind.toml, falling back to hyprbind.yml.
// A missing settings file yields zero-value settings, not an error.
func Load() (*Settings, error) {
	dir := Dir()
	if dir == "" {
		return &Settings{}, nil
	}

	tomlPath := filepath.Join(dir, "hyprbind.toml")
	if data, err := os.ReadFile(tomlPath); err == nil {
		var s Settings
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", tomlPath, err)
		}
		return &s, nil
	}

	yamlPath := filepath.Join(dir, "hyprbind.yml")
	if data, err := os.ReadFile(yamlPath); err == nil {
		var s Settings
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", yamlPath, err)
		}
		return &s, nil
	}

	return &Settings{}, nil
}

// Save writes settings as TOML, creating the settings directory if
// needed.
func Save(s *Settings) error {
	dir := Dir()
	if dir == "" {
		return fmt.Errorf("cannot determine settings directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	path := filepath.Join(dir, "hyprbind.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
