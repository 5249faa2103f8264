package tui

import (
	"github.com/Tanishkag23/xpense/internal/screen"
	"github.com/Tanishkag23/xpense/internal/tui/components"
	"github.com/Tanishkag23/xpense/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetsTab(snap screen.Snapshot, cw int) string {
	rows := snap.Tables[screen.BudgetsBody]
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Cells
	}

	inner := components.CardInnerWidth(cw)
	body := components.DataTable([]components.Column{
		{Title: "Category"},
		{Title: "Budget", Width: 14, Right: true},
	}, cells, inner, -1, 0, 0)
	if len(rows) == 0 {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Active.TextDim).
			Render("  No budgets yet. Press [a] to set one.")
	}
	return components.ContentCard("Monthly Budgets", body, cw)
}
