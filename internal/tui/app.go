// Package tui provides the interactive Bubble Tea client for xpense.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tanishkag23/xpense/internal/config"
	"github.com/Tanishkag23/xpense/internal/controller"
	"github.com/Tanishkag23/xpense/internal/screen"
	"github.com/Tanishkag23/xpense/internal/tui/components"
	"github.com/Tanishkag23/xpense/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
)

// opDoneMsg is sent when a controller action finishes.
type opDoneMsg struct {
	op  string
	err error
}

// App is the root Bubble Tea model. All server state lives in the
// controller's screen; App only holds what is needed to draw it.
type App struct {
	ctrl *controller.Controller
	cfg  config.Config

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Startup and in-flight requests
	started  bool
	inflight int
	spinner  spinner.Model

	// Pending alert dialogs, oldest first
	alerts []string

	// Action form (huh)
	form     *huh.Form
	formKind formKind
	formVals *formValues
	deleteID int64

	// Per-tab state
	exp      expensesState
	settings settingsState
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	minContentHeight = 5 // minimum content area height
)

const (
	tabDashboard = iota
	tabExpenses
	tabBudgets
	tabReport
	tabSettings
)

// NewApp creates a new TUI app model around a controller.
func NewApp(ctrl *controller.Controller, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		ctrl:    ctrl,
		cfg:     cfg,
		spinner: sp,
		exp:     newExpensesState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		a.spinner.Tick,
		runOp("startup", a.ctrl.Startup),
	)
}

// runOp runs fn off the UI goroutine and reports back with opDoneMsg.
func runOp(op string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{op: op, err: fn(context.Background())}
	}
}

// run starts a controller action and the busy spinner.
func (a App) run(op string, fn func(context.Context) error) (tea.Model, tea.Cmd) {
	a.inflight++
	cmds := []tea.Cmd{runOp(op, fn)}
	if a.inflight == 1 {
		cmds = append(cmds, a.spinner.Tick)
	}
	return a, tea.Batch(cmds...)
}

func (a App) busy() bool {
	return a.inflight > 0 || !a.started
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width-4, 60))
		}
		return a, nil

	case opDoneMsg:
		return a.handleOpDone(msg), nil

	case spinner.TickMsg:
		if a.busy() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || len(a.alerts) > 0 || a.showHelp {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleOpDone(msg opDoneMsg) App {
	if msg.op == "startup" {
		a.started = true
	} else if a.inflight > 0 {
		a.inflight--
	}

	a.alerts = append(a.alerts, a.ctrl.Screen().TakeAlerts()...)
	if msg.err != nil {
		log.Debug().Err(msg.err).Str("op", msg.op).Msg("action finished with error")
		if !controller.Reported(msg.err) {
			a.alerts = append(a.alerts, msg.err.Error())
		}
	}

	a.exp.clamp(len(a.ctrl.Screen().Rows(screen.ExpensesBody)))
	return a
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabExpenses {
			a.exp.move(-1, a.expenseCount())
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabExpenses {
			a.exp.move(1, a.expenseCount())
		}
	case tea.MouseButtonLeft:
		// Tab bar is the first line.
		if msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// An open form intercepts all keys
	if a.form != nil {
		return a.updateForm(msg)
	}

	// Alerts are modal: any key dismisses the oldest one
	if len(a.alerts) > 0 {
		a.alerts = a.alerts[1:]
		return a, nil
	}

	if !a.started {
		if key == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	// Text inputs own the keyboard while editing
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}
	if a.activeTab == tabExpenses && a.exp.filtering {
		return a.updateFilterInput(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if m, cmd, handled := a.updateTabKey(key); handled {
		return m, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "R":
		return a.run("refresh", a.ctrl.RefreshAll)
	case "l":
		return a.openForm(formLogin)
	case "n":
		return a.openForm(formSignup)
	case "L":
		return a.run("logout", a.ctrl.Logout)
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}
	return a, nil
}

// updateTabKey handles keys that belong to the active tab.
func (a App) updateTabKey(key string) (tea.Model, tea.Cmd, bool) {
	switch a.activeTab {
	case tabDashboard:
		if key == "i" {
			m, cmd := a.openForm(formIncome)
			return m, cmd, true
		}

	case tabExpenses:
		n := a.expenseCount()
		switch key {
		case "j", "down":
			a.exp.move(1, n)
			return a, nil, true
		case "k", "up":
			a.exp.move(-1, n)
			return a, nil, true
		case "g", "home":
			a.exp.move(-n, n)
			return a, nil, true
		case "G", "end":
			a.exp.move(n, n)
			return a, nil, true
		case "a":
			m, cmd := a.openForm(formExpense)
			return m, cmd, true
		case "D", "delete":
			m, cmd := a.openForm(formDelete)
			return m, cmd, true
		case "/":
			a.exp.startFilter(a.ctrl.Filter())
			return a, a.exp.inputs[a.exp.focus].Cursor.BlinkCmd(), true
		case "c":
			scr := a.ctrl.Screen()
			scr.ClearInputs(screen.FilterCategory, screen.FilterDesc)
			m, cmd := a.run("filter", a.ctrl.ApplyFilter)
			return m, cmd, true
		case "o":
			a.ctrl.SetSortKey(a.ctrl.SortKey().Next())
			m, cmd := a.run("sort", a.ctrl.LoadExpenses)
			return m, cmd, true
		}

	case tabBudgets:
		if key == "a" {
			m, cmd := a.openForm(formBudget)
			return m, cmd, true
		}

	case tabSettings:
		switch key {
		case "j", "down":
			if a.settings.cursor < settingsFieldCount-1 {
				a.settings.cursor++
			}
			return a, nil, true
		case "k", "up":
			if a.settings.cursor > 0 {
				a.settings.cursor--
			}
			return a, nil, true
		case "enter":
			m, cmd := a.settingsStartEdit()
			return m, cmd, true
		}
	}
	return a, nil, false
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.started {
		return a.viewLoading()
	}

	if a.form != nil {
		return a.viewOverlay(a.form.View())
	}

	if len(a.alerts) > 0 {
		return a.viewAlert()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  xpense needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ xpense"))
	b.WriteString(subtitleStyle.Render(" · Expense Tracker"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Connecting to " + a.cfg.Server.BaseURL))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

// viewOverlay centers a dialog body on the background.
func (a App) viewOverlay(body string) string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewAlert() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Orange).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Width(min(a.width-10, 60))
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	title := "Notice"
	if n := len(a.alerts); n > 1 {
		title = fmt.Sprintf("Notice (1 of %d)", n)
	}
	body := titleStyle.Render(title) + "\n\n" +
		bodyStyle.Render(a.alerts[0]) + "\n\n" +
		dimStyle.Render("Press any key to dismiss")
	return a.viewOverlay(body)
}

func (a App) viewHelp() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	sections := []struct {
		name     string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"d e b r x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move in the expense list"},
		}},
		{"Session", []struct{ key, desc string }{
			{"l", "Log in"},
			{"n", "Sign up"},
			{"L", "Log out"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"a", "Add expense / set budget"},
			{"i", "Set income (dashboard)"},
			{"D", "Delete selected expense"},
			{"/", "Filter expenses"},
			{"c", "Clear filters"},
			{"o", "Cycle expense sort"},
			{"R", "Refresh everything"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.name))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return a.viewOverlay(b.String())
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height
	scr := a.ctrl.Screen()

	// 1. Header: tab bar with the greeting on the right
	header := components.RenderTabBar(a.activeTab, w, scr.Text(screen.HelloUser))

	// 2. Status bar
	info := components.StatusInfo{
		Hints:   a.tabHints(),
		Server:  a.cfg.Server.BaseURL,
		Session: a.ctrl.State().Kind.String(),
	}
	if a.inflight > 0 {
		info.Busy = a.spinner.View()
	}
	statusBar := components.RenderStatusBar(w, info)

	// 3. Content zone height
	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	snap := scr.Snapshot()
	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(snap, cw)
	case tabExpenses:
		content = a.renderExpensesTab(snap, cw, contentH)
	case tabBudgets:
		content = a.renderBudgetsTab(snap, cw)
	case tabReport:
		content = a.renderReportTab(snap, cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Center when the terminal is wider than the content
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) tabHints() string {
	switch a.activeTab {
	case tabDashboard:
		return "[i]ncome  [R]efresh"
	case tabExpenses:
		if a.exp.filtering {
			return "[tab] next field  [enter] apply  [esc] cancel"
		}
		return "[a]dd  [D]elete  [/]filter  s[o]rt"
	case tabBudgets:
		return "[a] set budget"
	case tabSettings:
		return "[j/k] move  [enter] edit"
	default:
		return "[R]efresh"
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
