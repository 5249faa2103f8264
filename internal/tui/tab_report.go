package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Tanishkag23/xpense/internal/screen"
	"github.com/Tanishkag23/xpense/internal/tui/components"
	"github.com/Tanishkag23/xpense/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderReportTab(snap screen.Snapshot, cw int) string {
	t := theme.Active
	var b strings.Builder

	balance := snap.Text[screen.RBalance]
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Income", Value: orDash(snap.Text[screen.RIncome])},
		{Label: "Expenses", Value: orDash(snap.Text[screen.RExpense])},
		{Label: "Balance", Value: orDash(balance), Tone: balanceTone(balance)},
	}, cw))
	b.WriteString("\n")

	rows := snap.Tables[screen.ReportBody]
	if len(rows) == 0 {
		b.WriteString(components.ContentCard("Report",
			lipgloss.NewStyle().Foreground(t.TextDim).Render("Nothing to report yet."), cw))
		return b.String()
	}

	labelW := 8
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r.Cells[0]))
	}
	labelW = min(labelW, 20)

	halves := components.LayoutRow(cw, 2)
	if a.isCompactLayout() {
		halves = []int{cw, cw}
	}

	// Left: share bars
	barsInner := components.CardInnerWidth(halves[0])
	barW := max(10, barsInner-labelW-14)
	var bars strings.Builder
	for i, r := range rows {
		bars.WriteString(components.ShareBar(r.Cells[0], r.Cells[1], r.Weight, labelW, barW))
		if i < len(rows)-1 {
			bars.WriteString("\n")
		}
	}
	left := components.ContentCard("Spending by Category", bars.String(), halves[0])

	// Right: column chart of the same totals
	values := make([]float64, len(rows))
	labels := make([]string, len(rows))
	for i, r := range rows {
		v, err := strconv.ParseFloat(r.Cells[1], 64)
		if err == nil {
			values[i] = v
		}
		labels[i] = r.Cells[0]
	}
	chart := components.ColumnChart(values, labels, t.Blue, components.CardInnerWidth(halves[1]), 8)
	right := components.ContentCard(fmt.Sprintf("Totals (%d categories)", len(rows)), chart, halves[1])

	if a.isCompactLayout() {
		b.WriteString(left)
		b.WriteString("\n")
		b.WriteString(right)
	} else {
		b.WriteString(components.CardRow([]string{left, right}))
	}
	return b.String()
}
