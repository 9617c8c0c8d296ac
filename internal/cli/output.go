package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/flight-delay-dashboard/internal/charts"
)

// Output formats accepted by -o.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var (
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func normalizeAirline(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func writeSpec(w io.Writer, spec charts.Spec, format string) error {
	switch format {
	case formatTable:
		return writeSpecTable(w, spec)
	case formatJSON:
		return writeJSON(w, spec)
	case formatYAML:
		return writeYAML(w, spec)
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func writeSpecTable(w io.Writer, spec charts.Spec) error {
	fmt.Fprintln(w, titleStyle.Render(spec.Title))

	header, rows := spec.Table()
	if len(rows) == 0 {
		fmt.Fprintln(w, dimStyle.Render("(no data)"))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	hr := make(table.Row, len(header))
	for i, h := range header {
		hr[i] = h
	}
	t.AppendHeader(hr)
	for _, r := range rows {
		t.AppendRow(table.Row(r))
	}
	t.Render()
	fmt.Fprintf(w, "(%d rows)\n", len(rows))
	return nil
}

// writeYAML renders v with the field names of its JSON encoding.
func writeYAML(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
