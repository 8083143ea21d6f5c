package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
	"github.com/AlexK-Notable/hyprbind/pkg/validate"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the config for duplicate bindings and risky actions",
		Long: `Scan the keybinds config for bindings that occupy the same input
slot (same modifiers, key, and submap - modifier order is ignored) and
for actions that execute shell commands.

Duplicate slots are reported as conflicts; shell-executing actions only
produce advisory warnings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			cfg := m.Config()

			// Re-insert into a fresh config to surface duplicates the
			// last-write-wins index absorbed at parse time.
			probe := keybind.NewConfig()
			var conflicts [][2]*keybind.Binding
			for _, b := range cfg.AllBindings() {
				if existing := probe.FindConflict(b); existing != nil {
					conflicts = append(conflicts, [2]*keybind.Binding{existing, b})
				}
				probe.Add(b)
			}

			warnings := 0
			for _, b := range cfg.AllBindings() {
				if w := validate.CheckDangerousAction(b.Action, b.Params); w != "" {
					fmt.Printf("%s line %d: %s\n", warningStyle.Render("warning"), b.Line, w)
					warnings++
				}
			}

			if len(conflicts) == 0 {
				fmt.Printf("%s no conflicts among %d binding(s)\n",
					successStyle.Render("ok"), len(cfg.AllBindings()))
			} else {
				for _, pair := range conflicts {
					fmt.Printf("%s %s bound on lines %d and %d (%s vs %s)\n",
						errorStyle.Render("conflict"),
						chordStyle.Render(pair[1].DisplayName()),
						pair[0].Line, pair[1].Line,
						pair[0].Action, pair[1].Action)
				}
				return fmt.Errorf("%d conflict(s) found", len(conflicts))
			}

			if warnings > 0 {
				fmt.Println(faintStyle.Render(fmt.Sprintf("%d advisory warning(s)", warnings)))
			}
			return nil
		},
	}
	return cmd
}
