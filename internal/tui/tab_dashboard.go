package tui

import (
	"strings"

	"github.com/Tanishkag23/xpense/internal/screen"
	"github.com/Tanishkag23/xpense/internal/session"
	"github.com/Tanishkag23/xpense/internal/tui/components"
	"github.com/Tanishkag23/xpense/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func balanceTone(v string) components.Tone {
	switch {
	case v == "":
		return components.ToneNormal
	case strings.HasPrefix(v, "-"):
		return components.ToneNegative
	default:
		return components.TonePositive
	}
}

// orDash shows a placeholder for regions that have not been rendered yet.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func (a App) renderDashboardTab(snap screen.Snapshot, cw int) string {
	var b strings.Builder

	if snap.PanelVisible {
		b.WriteString(a.renderLoginPanel(cw))
		b.WriteString("\n")
	}

	balance := snap.Text[screen.BalanceBox]
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: orDash(snap.Text[screen.IncomeBox])},
		{Label: "Expenses", Value: orDash(snap.Text[screen.ExpenseBox])},
		{Label: "Balance", Value: orDash(balance), Note: "income − expenses", Tone: balanceTone(balance)},
	}, cw))
	b.WriteString("\n")

	rows := snap.Tables[screen.ByCategoryBody]
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Cells
	}
	inner := components.CardInnerWidth(cw)
	body := components.DataTable([]components.Column{
		{Title: "Category"},
		{Title: "Total", Width: 14, Right: true},
	}, cells, inner, -1, 0, 0)
	if len(rows) == 0 {
		body += "\n" + lipgloss.NewStyle().Foreground(theme.Active.TextDim).Render("  No expenses yet.")
	}
	b.WriteString(components.ContentCard("Spending by Category", body, cw))

	return b.String()
}

// renderLoginPanel is shown whenever the session projection makes the
// login panel visible (guest or demo account).
func (a App) renderLoginPanel(cw int) string {
	t := theme.Active
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)

	who := "You are not signed in."
	if st := a.ctrl.State(); st.Kind == session.AutoDemo {
		who = "You are using the demo account (" + st.User + ")."
	}

	body := mutedStyle.Render(who+" ") +
		keyStyle.Render("[l]") + mutedStyle.Render(" log in  ") +
		keyStyle.Render("[n]") + mutedStyle.Render(" create account")
	return components.AccentCard("Login", body, cw)
}
