package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var showSubmaps bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List keybindings grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			cfg := m.Config()

			names := make([]string, 0, len(cfg.Categories))
			for name := range cfg.Categories {
				names = append(names, name)
			}
			sort.Strings(names)

			total := 0
			for _, name := range names {
				cat := cfg.Categories[name]
				if len(cat.Bindings) == 0 {
					continue
				}
				fmt.Println(headerStyle.Render(name))
				for _, b := range cat.Bindings {
					if b.Submap != "" && !showSubmaps {
						continue
					}
					desc := b.Description
					if desc == "" {
						desc = b.Action
					}
					line := fmt.Sprintf("  %s  %s", chordStyle.Render(b.DisplayName()), desc)
					if b.Submap != "" {
						line += faintStyle.Render(fmt.Sprintf(" [submap: %s]", b.Submap))
					}
					fmt.Println(line)
					total++
				}
				fmt.Println()
			}

			fmt.Println(faintStyle.Render(fmt.Sprintf("%d binding(s) in %s", total, m.ConfigPath())))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSubmaps, "submaps", true, "include submap bindings")
	return cmd
}
