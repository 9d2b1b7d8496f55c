package ui

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"sigs.k8s.io/yaml"

	"github.com/eeperfume/datagrid/internal/grid"
)

// renderRowYAML serializes a row to YAML in column display order and applies
// terminal syntax highlighting. Highlighting failures fall back to plain
// text.
func renderRowYAML(r grid.Row, cols []grid.Column, theme string) string {
	doc := map[string]any{"id": r.ID}
	fields := make(map[string]any, len(cols))
	for _, c := range cols {
		fields[c.Field] = r.Field(c.Field).Interface()
	}
	doc["fields"] = fields

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "marshal error: " + err.Error()
	}
	text := string(data)

	if theme == "" {
		theme = "dracula"
	}
	var b strings.Builder
	if err := quick.Highlight(&b, text, "yaml", "terminal256", theme); err != nil {
		return text
	}
	return b.String()
}
