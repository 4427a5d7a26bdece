package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/atpoint/internal/compose"
)

// Styles are the text styles of listings.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Key    lipgloss.Style
	Prefix lipgloss.Style
	Muted  lipgloss.Style
	Body   lipgloss.Style
}

// NewStyles returns listing styles. Unstyled output is plain text.
func NewStyles(styled bool) Styles {
	plain := lipgloss.NewStyle()
	if !styled {
		return Styles{Title: plain, Header: plain, Key: plain, Prefix: plain, Muted: plain, Body: plain}
	}
	return Styles{
		Title:  plain.Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		Header: plain.Bold(true).Underline(true),
		Key:    plain.Bold(true),
		Prefix: plain.Foreground(lipgloss.Color("#2196F3")),
		Muted:  plain.Faint(true),
		Body:   plain,
	}
}

// Table is a titled table rendered as aligned columns.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render lays the table out. Column widths are measured on the unstyled
// text, so styled and plain output align the same way.
func (t *Table) Render(st Styles) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(st.Title.Render(t.Title))
		sb.WriteString("\n")
	}
	writeRow := func(cells []string, style func(col int, cell string) lipgloss.Style) {
		var line strings.Builder
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				line.WriteString("  ")
			}
			text := cell
			if i < len(cells)-1 {
				text += strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			}
			line.WriteString(style(i, cell).Render(text))
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}

	if len(t.Headers) > 0 {
		writeRow(t.Headers, func(int, string) lipgloss.Style { return st.Header })
	}
	for _, row := range t.Rows {
		writeRow(row, func(col int, cell string) lipgloss.Style {
			switch {
			case col == 0:
				return st.Key
			case strings.HasPrefix(cell, "+"):
				return st.Prefix
			case col == len(t.Headers)-1:
				return st.Muted
			}
			return st.Body
		})
	}
	return sb.String()
}

// FormatMenu renders a composed menu: the targets found and the bindings
// of the applied map.
func FormatMenu(m *compose.Menu, st Styles) string {
	if m.Empty() {
		return st.Muted.Render("nothing at point") + "\n"
	}

	targets := Table{Title: "Targets", Headers: []string{"KIND", "VALUE"}}
	for _, t := range m.Targets {
		value := ""
		if t.HasValue() {
			value = fmt.Sprint(t.Value)
		}
		targets.AddRow(t.Kind.String(), value)
	}

	bindings := Table{Title: "Actions", Headers: []string{"KEY", "ACTION", "DESCRIPTION"}}
	for _, r := range compose.Rows(m.Applied) {
		bindings.AddRow(r.Key, r.Label, r.Description)
	}
	return targets.Render(st) + "\n" + bindings.Render(st)
}
