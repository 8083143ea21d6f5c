package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexK-Notable/hyprbind/pkg/export"
)

func newExportCmd() *cobra.Command {
	var (
		flagFormat string
		flagOut    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the config as a keybinding cheatsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagFormat != "markdown" {
				return fmt.Errorf("unsupported format %q (only markdown)", flagFormat)
			}

			m, err := newManager()
			if err != nil {
				return err
			}

			doc, err := export.Markdown(m.Config())
			if err != nil {
				return err
			}

			if flagOut == "" {
				fmt.Print(doc)
				return nil
			}
			if err := os.WriteFile(flagOut, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", flagOut, err)
			}
			fmt.Printf("%s wrote %s\n", successStyle.Render("ok"), flagOut)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagFormat, "format", "markdown", "output format")
	cmd.Flags().StringVarP(&flagOut, "output", "o", "", "write to file instead of stdout")
	return cmd
}
