package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// columnGap separates adjacent cells
const columnGap = "  "

// Column describes one table column
type Column struct {
	Header string
	Width  int  // minimum display width
	Max    int  // cells wider than Max are cut with "...", 0 keeps them whole
	Right  bool // right-align cells
}

// Table renders rows under a header and a rule. Rendering is a pure function
// of the columns and rows, so equal input always renders identically.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates an empty table
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Missing cells render empty, extra cells are ignored.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.columns))
	for i := range row {
		if i < len(cells) {
			row[i] = Truncate(cells[i], t.columns[i].Max)
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows
func (t *Table) Len() int {
	return len(t.rows)
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = max(col.Width, lipgloss.Width(col.Header))
		for _, row := range t.rows {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}

// Render returns the table, one line per row
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.widths()
	line := func(cells []string, right func(i int) bool) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = pad(c, widths[i], right(i))
		}
		return strings.TrimRight(strings.Join(parts, columnGap), " ")
	}
	alignOf := func(i int) bool { return t.columns[i].Right }

	var b strings.Builder

	headers := make([]string, len(t.columns))
	rules := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header
		rules[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(StyleTableHeader.Render(line(headers, alignOf)) + "\n")
	b.WriteString(StyleTableRule.Render(strings.Join(rules, columnGap)) + "\n")

	for _, row := range t.rows {
		b.WriteString(line(row, alignOf) + "\n")
	}
	return b.String()
}

// pad fills s with spaces up to width display cells
func pad(s string, width int, right bool) string {
	n := width - lipgloss.Width(s)
	if n <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Truncate cuts s to at most max runes, ending in "..." when cut.
// A non-positive max returns s unchanged.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// RenderBulletList renders items as indented "•" lines
func RenderBulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(StyleInfo.Render("  • ") + item + "\n")
	}
	return b.String()
}

// RenderNumberedList renders items as "1. item" lines
func RenderNumberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		b.WriteString(StyleAccent.Render(fmt.Sprintf("  %d. ", i+1)) + item + "\n")
	}
	return b.String()
}

// RenderKeyValue renders a "key: value" line
func RenderKeyValue(key, value string) string {
	return StyleAccent.Render(key) + ": " + value
}
