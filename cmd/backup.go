package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexK-Notable/hyprbind/pkg/backup"
)

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage timestamped config backups",
	}

	cmd.AddCommand(newBackupCreateCmd())
	cmd.AddCommand(newBackupListCmd())
	cmd.AddCommand(newBackupRestoreCmd())
	cmd.AddCommand(newBackupPruneCmd())
	return cmd
}

func newBackupCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Snapshot the current config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			path, err := m.Backups().Create(m.ConfigPath(), nil)
			if err != nil {
				return err
			}
			fmt.Printf("%s created %s\n", successStyle.Render("ok"), path)
			return nil
		},
	}
}

func newBackupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List backups, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			backups := m.Backups().List(m.ConfigPath())
			if len(backups) == 0 {
				fmt.Println(faintStyle.Render("no backups"))
				return nil
			}
			for _, b := range backups {
				fmt.Printf("%s  %6d bytes  %s\n",
					b.Timestamp.Format("2006-01-02 15:04:05"), b.Size, b.Path)
			}
			return nil
		},
	}
}

func newBackupRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <backup-path>",
		Short: "Restore a backup over the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			if err := m.RestoreBackup(args[0]); err != nil {
				return err
			}
			fmt.Printf("%s restored %s to %s\n",
				successStyle.Render("ok"), args[0], m.ConfigPath())
			return nil
		},
	}
}

func newBackupPruneCmd() *cobra.Command {
	var keep int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the newest backups",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			deleted := m.Backups().Cleanup(m.ConfigPath(), keep)
			fmt.Printf("%s deleted %d backup(s), kept at most %d\n",
				successStyle.Render("ok"), deleted, keep)
			return nil
		},
	}

	cmd.Flags().IntVar(&keep, "keep", backup.DefaultKeep, "number of backups to keep")
	return cmd
}
