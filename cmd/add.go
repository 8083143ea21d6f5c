package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlexK-Notable/hyprbind/pkg/dotfiles"
	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
	"github.com/AlexK-Notable/hyprbind/pkg/mode"
	"github.com/AlexK-Notable/hyprbind/pkg/validate"
)

func newAddCmd() *cobra.Command {
	var (
		flagKind   string
		flagMods   []string
		flagKey    string
		flagDesc   string
		flagAction string
		flagParams string
		flagSubmap string
		flagLive   bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a keybinding",
		Long: `Add a keybinding to the config file, or push it to the running
compositor with --live (the change is then not persisted).`,
		Example: `  hyprbind add --mods '$mainMod' --key Q --desc "Close window" --action killactive
  hyprbind add --kind bindm --mods '$mainMod' --key mouse:272 --action movewindow --live`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := keybind.KindFromString(flagKind)
			if !ok {
				return fmt.Errorf("unknown bind kind %q (bindd, bind, bindel, bindm)", flagKind)
			}
			if flagKey == "" || flagAction == "" {
				return fmt.Errorf("--key and --action are required")
			}

			b := &keybind.Binding{
				Kind:        kind,
				Modifiers:   flagMods,
				Key:         flagKey,
				Description: flagDesc,
				Action:      flagAction,
				Params:      flagParams,
				Submap:      flagSubmap,
				Category:    keybind.DefaultCategory,
			}

			for _, mod := range b.Modifiers {
				if !keybind.IsValidModifier(mod) {
					fmt.Printf("%s unknown modifier %q\n", warningStyle.Render("warning"), mod)
				}
			}
			if w := validate.CheckDangerousAction(b.Action, b.Params); w != "" {
				fmt.Printf("%s %s\n", warningStyle.Render("warning"), w)
			}

			return applyBinding(b, mode.ActionAdd, flagLive)
		},
	}

	cmd.Flags().StringVar(&flagKind, "kind", "bindd", "bind directive (bindd, bind, bindel, bindm)")
	cmd.Flags().StringSliceVar(&flagMods, "mods", nil, "modifier tokens (e.g. '$mainMod,SHIFT')")
	cmd.Flags().StringVar(&flagKey, "key", "", "key token")
	cmd.Flags().StringVar(&flagDesc, "desc", "", "description (bindd only)")
	cmd.Flags().StringVar(&flagAction, "action", "", "dispatcher action")
	cmd.Flags().StringVar(&flagParams, "params", "", "action parameters")
	cmd.Flags().StringVar(&flagSubmap, "submap", "", "submap name (empty for the root map)")
	cmd.Flags().BoolVar(&flagLive, "live", false, "apply via IPC to the running compositor instead of the file")
	return cmd
}

// applyBinding routes an edit through the mode manager and reports the
// outcome. Safe-mode edits are saved to disk (with backup retention);
// live-mode edits never touch the file.
func applyBinding(b *keybind.Binding, action mode.Action, live bool) error {
	m, err := newManager()
	if err != nil {
		return err
	}
	mm := mode.NewManager(m)

	if live {
		if !mm.SetMode(mode.Live) {
			return fmt.Errorf("live mode unavailable: hyprland is not running")
		}
	}

	res := mm.Apply(b, action)
	if res == nil {
		return fmt.Errorf("invalid action")
	}
	if !res.Success {
		if len(res.Conflicts) > 0 {
			lines := make([]string, 0, len(res.Conflicts))
			for _, c := range res.Conflicts {
				lines = append(lines, fmt.Sprintf("  %s -> %s (line %d)",
					c.DisplayName(), c.Action, c.Line))
			}
			return fmt.Errorf("%s\n%s", res.Message, strings.Join(lines, "\n"))
		}
		return fmt.Errorf("%s", res.Message)
	}

	if mm.Mode() == mode.Safe {
		if dotfiles.ChezmoiManaged(m.ConfigPath()) {
			fmt.Printf("%s %s is managed by chezmoi; a direct write may be overwritten on the next apply\n",
				warningStyle.Render("warning"), m.ConfigPath())
		}
		if err := m.Save(); err != nil {
			return err
		}
	}

	fmt.Printf("%s %s\n", successStyle.Render("ok"), res.Message)
	return nil
}
