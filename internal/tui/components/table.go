package components

import (
	"strings"

	"github.com/Tanishkag23/xpense/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Column describes one table column. Width 0 means "take what is left".
type Column struct {
	Title string
	Width int
	Right bool
}

// DataTable renders a header row and body rows. cursor marks the selected
// row, or -1 for none. Only rows [offset, offset+visible) are drawn.
func DataTable(cols []Column, rows [][]string, width, cursor, offset, visible int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	gutter := lipgloss.NewStyle().Background(t.Surface).Render("  ")

	widths := columnWidths(cols, width-2)

	var b strings.Builder
	b.WriteString(gutter)
	b.WriteString(headerStyle.Render(formatRow(cols, widths, titles(cols))))
	b.WriteString("\n")

	if visible <= 0 {
		visible = len(rows)
	}
	end := min(len(rows), offset+visible)
	for i := max(0, offset); i < end; i++ {
		line := formatRow(cols, widths, rows[i])
		if i == cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(gutter)
			b.WriteString(rowStyle.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ScrollOffset keeps cursor inside a window of visible rows.
func ScrollOffset(offset, cursor, visible int) int {
	if visible <= 0 {
		return 0
	}
	if cursor < offset {
		return max(0, cursor)
	}
	if cursor >= offset+visible {
		return cursor - visible + 1
	}
	return offset
}

func titles(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Title
	}
	return out
}

func columnWidths(cols []Column, total int) []int {
	widths := make([]int, len(cols))
	used, flex := 0, -1
	for i, c := range cols {
		if c.Width == 0 && flex < 0 {
			flex = i
			continue
		}
		widths[i] = max(c.Width, lipgloss.Width(c.Title))
		used += widths[i] + 1
	}
	if flex >= 0 {
		widths[flex] = max(lipgloss.Width(cols[flex].Title), total-used)
	}
	return widths
}

func formatRow(cols []Column, widths []int, cells []string) string {
	var b strings.Builder
	for i := range cols {
		cell := ""
		if i < len(cells) {
			cell = truncate(cells[i], widths[i])
		}
		gap := strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(cell)))
		if cols[i].Right {
			b.WriteString(gap + cell)
		} else {
			b.WriteString(cell + gap)
		}
		if i < len(cols)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}
