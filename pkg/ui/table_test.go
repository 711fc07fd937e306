package ui

import (
	"strings"
	"testing"
)

func TestTable_RenderIdempotent(t *testing.T) {
	build := func() string {
		table := NewTable(
			Column{Header: "Name", Width: 12},
			Column{Header: "Category", Width: 10},
		)
		table.AddRow("Foundation", "structural")
		table.AddRow("Living Room", "interior")
		return table.Render()
	}

	first := build()
	if first != build() {
		t.Error("table rendering is not deterministic")
	}
	if !strings.Contains(first, "Living Room") {
		t.Errorf("table missing row: %q", first)
	}
}

func TestTable_Columns(t *testing.T) {
	SetTheme("notty")
	defer SetTheme("auto")

	table := NewTable(
		Column{Header: "Name", Width: 6},
		Column{Header: "Count", Right: true},
		Column{Header: "Description", Max: 10},
	)
	table.AddRow("Roof", "4", "Roofing materials and weatherproofing")
	table.AddRow("Walls")

	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}

	lines := strings.Split(strings.TrimRight(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule and 2 rows, got %d lines:\n%s", len(lines), table.Render())
	}
	if !strings.Contains(lines[0], "Name    Count  Description") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[2], "Roof        4  Roofing...") {
		t.Errorf("expected padded, right-aligned and cut row, got %q", lines[2])
	}
	if strings.TrimSpace(lines[3]) != "Walls" {
		t.Errorf("missing cells should render empty, got %q", lines[3])
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Kitchen", 10, "Kitchen"},
		{"Living Room", 8, "Livin..."},
		{"Roof", 2, "Ro"},
		{"Garage", 0, "Garage"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestRenderLists(t *testing.T) {
	bullets := RenderBulletList([]string{"all", "structural"})
	if !strings.Contains(bullets, "• all\n") || !strings.Contains(bullets, "• structural\n") {
		t.Errorf("unexpected bullets:\n%s", bullets)
	}

	numbered := RenderNumberedList([]string{"Browse", "Search"})
	if !strings.Contains(numbered, "1. Browse\n") || !strings.Contains(numbered, "2. Search\n") {
		t.Errorf("unexpected numbered list:\n%s", numbered)
	}
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("auto")

	for _, theme := range Themes() {
		SetTheme(theme)
		if FormatCategory("interior") == "" {
			t.Errorf("theme %q renders no category tag", theme)
		}
	}

	SetTheme("neon")
	if !strings.Contains(FormatCategory("garden"), "[garden]") {
		t.Error("unknown category should still render its tag")
	}
}
