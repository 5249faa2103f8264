package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTabVisualWidth(t *testing.T) {
	for i, tab := range Tabs {
		want := len(tab.Name) + 2
		if got := TabVisualWidth(tab, true); got != want {
			t.Errorf("active %s width = %d, want %d", tab.Name, got, want)
		}
		if tab.KeyPos < 0 {
			want += 3 // "[x]"
		}
		if got := TabVisualWidth(tab, false); got != want {
			t.Errorf("inactive tab %d (%s) width = %d, want %d", i, tab.Name, got, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	tests := map[rune]int{'d': 0, 'e': 1, 'b': 2, 'r': 3, 'x': 4, 'z': -1}
	for k, want := range tests {
		if got := TabIdxByKey(k); got != want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", k, got, want)
		}
	}
}

func TestRenderTabBarFillsWidth(t *testing.T) {
	bar := RenderTabBar(1, 100, "Hi, demo")
	if w := lipgloss.Width(bar); w != 100 {
		t.Fatalf("tab bar width = %d, want 100", w)
	}
	if !strings.Contains(bar, "Hi, demo") {
		t.Fatal("greeting missing from tab bar")
	}
}

func TestDataTableCursorAndWindow(t *testing.T) {
	cols := []Column{{Title: "ID", Width: 4, Right: true}, {Title: "Category"}}
	rows := [][]string{{"1", "Food"}, {"2", "Rent"}, {"3", "Travel"}, {"4", "Books"}}

	out := DataTable(cols, rows, 40, 2, 1, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Rent") || !strings.Contains(lines[2], "Travel") {
		t.Fatalf("wrong window:\n%s", out)
	}
	if !strings.Contains(lines[2], "▸") {
		t.Fatalf("cursor marker not on selected row:\n%s", out)
	}
	for i, l := range lines {
		if w := lipgloss.Width(l); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct{ offset, cursor, visible, want int }{
		{0, 0, 5, 0},
		{0, 4, 5, 0},
		{0, 5, 5, 1},
		{3, 1, 5, 1},
		{2, 9, 3, 7},
		{4, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := ScrollOffset(tt.offset, tt.cursor, tt.visible); got != tt.want {
			t.Errorf("ScrollOffset(%d,%d,%d) = %d, want %d", tt.offset, tt.cursor, tt.visible, got, tt.want)
		}
	}
}

func TestColumnChartShape(t *testing.T) {
	out := ColumnChart([]float64{200, 50.25}, []string{"Food", "Travel"}, lipgloss.Color("#4385BE"), 40, 6)
	lines := strings.Split(out, "\n")
	// 6 bar rows, axis, labels
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[len(lines)-1], "Food") {
		t.Fatalf("labels missing:\n%s", out)
	}
	if ColumnChart(nil, nil, lipgloss.Color("1"), 40, 6) != "" {
		t.Fatal("empty chart should render nothing")
	}
}

func TestShareBarClamps(t *testing.T) {
	a := ShareBar("Food", "200.00", 1.5, 10, 20)
	b := ShareBar("Food", "200.00", 1, 10, 20)
	if lipgloss.Width(a) != lipgloss.Width(b) {
		t.Fatalf("weight above 1 should render like 1")
	}
	if !strings.Contains(a, "200.00") {
		t.Fatal("amount missing")
	}
}
