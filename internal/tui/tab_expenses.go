package tui

import (
	"fmt"
	"strings"

	"github.com/Tanishkag23/xpense/internal/model"
	"github.com/Tanishkag23/xpense/internal/screen"
	"github.com/Tanishkag23/xpense/internal/tui/components"
	"github.com/Tanishkag23/xpense/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// expensesState tracks the expenses tab: the row cursor and the two
// filter inputs.
type expensesState struct {
	cursor    int
	filtering bool
	focus     int // 0=category, 1=description
	inputs    [2]textinput.Model
}

func newFilterInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Width = 24
	ti.Prompt = ""
	return ti
}

func newExpensesState() expensesState {
	return expensesState{
		inputs: [2]textinput.Model{
			newFilterInput("any category"),
			newFilterInput("any description"),
		},
	}
}

func (s *expensesState) move(delta, n int) {
	s.cursor += delta
	s.clamp(n)
}

func (s *expensesState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// startFilter opens the filter inputs seeded with the current filter.
func (s *expensesState) startFilter(f model.ExpenseFilter) {
	s.filtering = true
	s.focus = 0
	s.inputs[0].SetValue(f.Category)
	s.inputs[1].SetValue(f.Description)
	s.inputs[0].Focus()
	s.inputs[1].Blur()
}

func (s *expensesState) stopFilter() {
	s.filtering = false
	s.inputs[0].Blur()
	s.inputs[1].Blur()
}

func (a App) expenseCount() int {
	return len(a.ctrl.Screen().Rows(screen.ExpensesBody))
}

// selectedExpense returns the row under the cursor.
func (a App) selectedExpense() (screen.Row, bool) {
	rows := a.ctrl.Screen().Rows(screen.ExpensesBody)
	if a.exp.cursor < 0 || a.exp.cursor >= len(rows) {
		return screen.Row{}, false
	}
	return rows[a.exp.cursor], true
}

func (a App) updateFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		scr := a.ctrl.Screen()
		scr.SetInput(screen.FilterCategory, a.exp.inputs[0].Value())
		scr.SetInput(screen.FilterDesc, a.exp.inputs[1].Value())
		a.exp.stopFilter()
		a.exp.cursor = 0
		return a.run("filter", a.ctrl.ApplyFilter)
	case "esc":
		a.exp.stopFilter()
		return a, nil
	case "tab", "shift+tab", "up", "down":
		a.exp.inputs[a.exp.focus].Blur()
		a.exp.focus = 1 - a.exp.focus
		return a, a.exp.inputs[a.exp.focus].Focus()
	}

	var cmd tea.Cmd
	a.exp.inputs[a.exp.focus], cmd = a.exp.inputs[a.exp.focus].Update(msg)
	return a, cmd
}

func (a App) renderExpensesTab(snap screen.Snapshot, cw, h int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	// Filter line
	var filter strings.Builder
	if a.exp.filtering {
		filter.WriteString(accentStyle.Render("Category: "))
		filter.WriteString(a.exp.inputs[0].View())
		filter.WriteString("  ")
		filter.WriteString(accentStyle.Render("Description: "))
		filter.WriteString(a.exp.inputs[1].View())
	} else {
		cat := snap.Inputs[screen.FilterCategory]
		desc := snap.Inputs[screen.FilterDesc]
		filter.WriteString(labelStyle.Render("Category: "))
		filter.WriteString(valueStyle.Render(orAny(cat)))
		filter.WriteString(labelStyle.Render("  Description: "))
		filter.WriteString(valueStyle.Render(orAny(desc)))
	}
	sortKey := a.ctrl.SortKey()
	sortLabel := "server order"
	if sortKey != model.SortNone {
		sortLabel = string(sortKey)
	}
	filter.WriteString(labelStyle.Render("  Sort: "))
	filter.WriteString(valueStyle.Render(sortLabel))

	rows := snap.Tables[screen.ExpensesBody]
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Cells
	}

	// card border (2) + title (1) + filter (1) + blank (1) + header (1)
	visible := max(1, h-6)
	offset := components.ScrollOffset(0, a.exp.cursor, visible)

	cols := []components.Column{
		{Title: "ID", Width: 6, Right: true},
		{Title: "Amount", Width: 12, Right: true},
		{Title: "Date", Width: 10},
		{Title: "Category", Width: 14},
		{Title: "Description"},
	}
	if a.isCompactLayout() {
		cols[3].Width = 10
	}

	var body strings.Builder
	body.WriteString(filter.String())
	body.WriteString("\n\n")
	if len(rows) == 0 {
		body.WriteString(dimStyle.Render("  No expenses match. Press [a] to add one."))
	} else {
		body.WriteString(components.DataTable(cols, cells, components.CardInnerWidth(cw), a.exp.cursor, offset, visible))
	}

	title := fmt.Sprintf("Expenses (%d)", len(rows))
	return components.ContentCard(title, body.String(), cw)
}

func orAny(s string) string {
	if s == "" {
		return "any"
	}
	return s
}
