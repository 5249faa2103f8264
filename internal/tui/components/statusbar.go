package components

import (
	"strings"

	"github.com/Tanishkag23/xpense/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusInfo is what the bottom bar reports.
type StatusInfo struct {
	Hints   string // key hints for the active tab
	Busy    string // spinner frame while requests are in flight
	Server  string
	Session string
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, info StatusInfo) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.Surface)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	busyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	left := hintStyle.Render(" " + info.Hints + "  [?]help  [q]uit")

	var right strings.Builder
	if info.Busy != "" {
		right.WriteString(busyStyle.Render(info.Busy + " syncing  "))
	}
	if info.Session != "" {
		right.WriteString(dimStyle.Render(info.Session + "  "))
	}
	if info.Server != "" {
		right.WriteString(dimStyle.Render(info.Server + " "))
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right.String())
	if padding < 0 {
		padding = 0
	}

	bar := left + barStyle.Render(strings.Repeat(" ", padding)) + right.String()
	return barStyle.Width(width).MaxWidth(width).Render(bar)
}
