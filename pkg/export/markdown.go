// Package export renders a loaded configuration as a keybinding
// cheatsheet.
package export

import (
	"fmt"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/AlexK-Notable/hyprbind/pkg/keybind"
)

const markdownTemplate = `# Hyprland Keybindings

**Generated:** {{.Generated}}
{{- if .ConfigPath}}
**Config:** ` + "`{{.ConfigPath}}`" + `
{{- end}}
{{range .Categories}}
## {{.Name}}

{{range .Entries -}}
- ` + "`{{.Chord}}`" + ` - {{.Description}} ({{.Action}})
{{end -}}
{{end}}`

type markdownEntry struct {
	Chord       string
	Description string
	Action      string
}

type markdownCategory struct {
	Name    string
	Entries []markdownEntry
}

type markdownData struct {
	Generated  string
	ConfigPath string
	Categories []markdownCategory
}

// Markdown renders cfg as a Markdown cheatsheet, categories sorted by
// name, empty categories omitted.
func Markdown(cfg *keybind.Config) (string, error) {
	names := make([]string, 0, len(cfg.Categories))
	for name := range cfg.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	data := markdownData{
		Generated:  time.Now().Format("2006-01-02 15:04:05"),
		ConfigPath: cfg.FilePath,
	}
	for _, name := range names {
		cat := cfg.Categories[name]
		if len(cat.Bindings) == 0 {
			continue
		}
		mc := markdownCategory{Name: name}
		for _, b := range cat.Bindings {
			desc := b.Description
			if desc == "" {
				desc = "No description"
			}
			action := b.Action
			if b.Params != "" {
				action = fmt.Sprintf("%s, %s", b.Action, b.Params)
			}
			mc.Entries = append(mc.Entries, markdownEntry{
				Chord:       b.DisplayName(),
				Description: desc,
				Action:      action,
			})
		}
		data.Categories = append(data.Categories, mc)
	}

	tmpl, err := template.New("cheatsheet").Parse(markdownTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse cheatsheet template: %w", err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render cheatsheet: %w", err)
	}
	return sb.String(), nil
}
