package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newVarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vars",
		Short: "List variables resolved from the config directory",
		Long: `Show the $name = value definitions loaded from variables.conf and
defaults.conf next to the keybinds config. Later files override earlier
ones on name collision.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			vars := m.Config().Variables

			names := make([]string, 0, len(vars))
			for name := range vars {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				fmt.Printf("%s = %s\n", chordStyle.Render(name), vars[name])
			}
			fmt.Println(faintStyle.Render(fmt.Sprintf("%d variable(s)", len(names))))
			return nil
		},
	}
	return cmd
}
