// Package cmd implements the hyprbind command tree.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AlexK-Notable/hyprbind/pkg/manager"
	"github.com/AlexK-Notable/hyprbind/pkg/settings"
	"github.com/AlexK-Notable/hyprbind/pkg/validate"
)

var (
	flagConfig  string
	flagVerbose bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "hyprbind",
	Short: "Manage Hyprland keybinding configurations",
	Long: `hyprbind edits Hyprland keybinding config files with conflict
detection, atomic writes, and timestamped backups.

Edits are applied in "safe" mode (written to the config file) or in
"live" mode (pushed to the running compositor over IPC without
persisting).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "",
		"path to keybinds config file (default ~/.config/hypr/config/keybinds.conf)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newRemoveCmd())
	rootCmd.AddCommand(newVarsCmd())
	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadRules builds the path allow-list from the environment plus any
// extra directories in the settings file.
func loadRules(s *settings.Settings) *validate.PathRules {
	rules := validate.NewPathRules()
	rules.AllowedDirs = append(rules.AllowedDirs, s.AllowedDirs...)
	return rules
}

// newManager assembles a config manager from settings and the --config
// flag, with the config already loaded.
func newManager() (*manager.Manager, error) {
	s, err := settings.Load()
	if err != nil {
		return nil, err
	}

	configPath := flagConfig
	if configPath == "" {
		configPath = s.ConfigPath
	}

	m := manager.New(manager.Options{
		ConfigPath: configPath,
		BackupDir:  s.BackupDir,
		BackupKeep: s.BackupKeep,
		Rules:      loadRules(s),
		Logger:     log,
	})
	if _, err := m.Load(); err != nil {
		return nil, err
	}
	return m, nil
}
