package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/AlexK-Notable/hyprbind/pkg/settings"
)

func newSchemaCmd() *cobra.Command {
	var flagOut string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate the JSON schema for the settings file",
		Long: `Emit a JSON schema describing hyprbind's settings file
(hyprbind.toml / hyprbind.yml), for IDE autocompletion and validation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reflector := jsonschema.Reflector{ExpandedStruct: true}
			schema := reflector.Reflect(&settings.Settings{})

			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}

			if flagOut == "" {
				fmt.Println(string(data))
				return nil
			}
			if err := os.WriteFile(flagOut, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", flagOut, err)
			}
			fmt.Printf("%s wrote %s\n", successStyle.Render("ok"), flagOut)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagOut, "output", "o", "", "write to file instead of stdout")
	return cmd
}
