package components

import (
	"fmt"

	"github.com/Tanishkag23/xpense/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForShare returns a color by how large a category is relative to
// the largest one: the biggest spenders stand out.
func ColorForShare(w float64) string {
	t := theme.Active
	switch {
	case w >= 0.9:
		return string(t.Red)
	case w >= 0.6:
		return string(t.Orange)
	case w >= 0.3:
		return string(t.Yellow)
	default:
		return string(t.Green)
	}
}

// ShareBar renders "label  [bar]  amount" with the bar filled to weight
// (0-1, relative to the largest category).
func ShareBar(label, amount string, weight float64, labelW, barWidth int) string {
	t := theme.Active

	if weight < 0 {
		weight = 0
	}
	if weight > 1 {
		weight = 1
	}
	if barWidth < 4 {
		barWidth = 4
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForShare(weight)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, truncate(label, labelW))) +
		spaceStyle.Render(" ") +
		bar.ViewAs(weight) +
		spaceStyle.Render(" ") +
		amountStyle.Render(amount)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
