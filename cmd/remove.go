package cmd

import (
	"github.com/spf13/cobra"

	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
	"github.com/AlexK-Notable/hyprbind/pkg/mode"
)

func newRemoveCmd() *cobra.Command {
	var (
		flagMods   []string
		flagKey    string
		flagSubmap string
		flagLive   bool
	)

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Remove a keybinding",
		Long: `Remove the binding occupying a chord (modifiers + key + submap).
Modifier order does not matter. With --live the unbind is sent to the
running compositor and the config file is left alone.`,
		Example: `  hyprbind remove --mods '$mainMod' --key Q
  hyprbind remove --mods 'SHIFT,$mainMod' --key F --live`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := &keybind.Binding{
				Kind:      keybind.KindStandard,
				Modifiers: flagMods,
				Key:       flagKey,
				Submap:    flagSubmap,
				Category:  keybind.DefaultCategory,
			}
			return applyBinding(b, mode.ActionRemove, flagLive)
		},
	}

	cmd.Flags().StringSliceVar(&flagMods, "mods", nil, "modifier tokens")
	cmd.Flags().StringVar(&flagKey, "key", "", "key token")
	cmd.Flags().StringVar(&flagSubmap, "submap", "", "submap name")
	cmd.Flags().BoolVar(&flagLive, "live", false, "apply via IPC instead of the file")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
