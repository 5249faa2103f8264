package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tanishkag23/xpense/internal/config"
	"github.com/Tanishkag23/xpense/internal/controller"
	"github.com/Tanishkag23/xpense/internal/model"
	"github.com/Tanishkag23/xpense/internal/screen"
	"github.com/Tanishkag23/xpense/internal/session"
)

// stubBackend answers every call from fixed data.
type stubBackend struct {
	mu       sync.Mutex
	expenses []model.Expense
	listErr  error
	lists    int
}

func (s *stubBackend) Me(context.Context) (model.Identity, error) {
	return model.Identity{LoggedIn: true, User: "alice"}, nil
}
func (s *stubBackend) Login(context.Context, model.Credentials) (model.LoginResult, error) {
	return model.LoginResult{OK: true}, nil
}
func (s *stubBackend) Signup(context.Context, model.Credentials) (model.Ack, error) {
	return model.Ack{OK: true}, nil
}
func (s *stubBackend) Logout(context.Context) error { return nil }
func (s *stubBackend) Dashboard(context.Context) (model.DashboardSummary, error) {
	return model.DashboardSummary{}, nil
}
func (s *stubBackend) ListExpenses(context.Context, model.ExpenseFilter) ([]model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lists++
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out, s.listErr
}
func (s *stubBackend) AddExpense(context.Context, model.NewExpense) (model.Ack, error) {
	return model.Ack{OK: true}, nil
}
func (s *stubBackend) DeleteTransaction(context.Context, int64) error { return nil }
func (s *stubBackend) ListBudgets(context.Context) ([]model.Budget, error) {
	return nil, nil
}
func (s *stubBackend) SetBudget(context.Context, model.BudgetInput) (model.Ack, error) {
	return model.Ack{OK: true}, nil
}
func (s *stubBackend) SetIncome(context.Context, string) (model.Ack, error) {
	return model.Ack{OK: true}, nil
}

func newTestApp(t *testing.T, b *stubBackend) App {
	t.Helper()
	nop := zerolog.Nop()
	ctrl := controller.New(b, screen.New(), controller.Options{
		Policy: session.Policy{DemoUser: "demo"},
		Logger: &nop,
	})
	a := NewApp(ctrl, config.DefaultConfig())
	a.width, a.height = 120, 40
	a.started = true
	return a
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, a App, msg tea.KeyMsg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	require.True(t, ok, "Update returned %T", m)
	return next
}

// execute runs a command and feeds every resulting message back into the app.
func execute(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	if cmd == nil {
		return a
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			a = execute(t, a, c)
		}
	case opDoneMsg:
		m, next := a.Update(msg)
		a = m.(App)
		a = execute(t, a, next)
	}
	return a
}

func TestTabLetterKeysSwitchTabs(t *testing.T) {
	a := newTestApp(t, &stubBackend{})

	tests := []struct {
		key  string
		want int
	}{
		{"e", tabExpenses},
		{"b", tabBudgets},
		{"r", tabReport},
		{"x", tabSettings},
		{"d", tabDashboard},
	}
	for _, tc := range tests {
		a = press(t, a, keyRunes(tc.key))
		assert.Equal(t, tc.want, a.activeTab, "key %q", tc.key)
	}
}

func TestArrowKeysWrapAround(t *testing.T) {
	a := newTestApp(t, &stubBackend{})
	a = press(t, a, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, tabSettings, a.activeTab)
	a = press(t, a, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, tabDashboard, a.activeTab)
}

func TestKeysIgnoredBeforeStartup(t *testing.T) {
	a := newTestApp(t, &stubBackend{})
	a.started = false
	a = press(t, a, keyRunes("e"))
	assert.Equal(t, tabDashboard, a.activeTab)
}

func TestAlertsDismissOneKeyAtATime(t *testing.T) {
	a := newTestApp(t, &stubBackend{})
	a.alerts = []string{"first", "second"}

	a = press(t, a, keyRunes("e"))
	assert.Equal(t, []string{"second"}, a.alerts)
	assert.Equal(t, tabDashboard, a.activeTab, "dismissing key must not switch tabs")

	a = press(t, a, keyRunes("e"))
	assert.Empty(t, a.alerts)

	a = press(t, a, keyRunes("e"))
	assert.Equal(t, tabExpenses, a.activeTab)
}

func TestOpDoneCollectsAlerts(t *testing.T) {
	a := newTestApp(t, &stubBackend{})
	a.inflight = 1
	a.ctrl.Screen().Alert("Login failed")

	m, _ := a.Update(opDoneMsg{op: "login", err: controller.ErrRejected})
	a = m.(App)

	assert.Equal(t, 0, a.inflight)
	assert.Equal(t, []string{"Login failed"}, a.alerts)
}

func TestOpDoneAlertsUnreportedError(t *testing.T) {
	a := newTestApp(t, &stubBackend{})
	a.inflight = 1

	m, _ := a.Update(opDoneMsg{op: "refresh", err: errors.New("boom")})
	a = m.(App)

	assert.Equal(t, []string{"boom"}, a.alerts)
}

func TestStartupMarksStarted(t *testing.T) {
	a := newTestApp(t, &stubBackend{})
	a.started = false

	a = execute(t, a, runOp("startup", a.ctrl.Startup))

	assert.True(t, a.started)
	assert.Equal(t, session.User("alice"), a.ctrl.State())
}

func TestSortKeyCyclesAndRefetches(t *testing.T) {
	b := &stubBackend{expenses: []model.Expense{
		{ID: 2, Amount: decimal.NewFromInt(10), Date: "2024-01-02", Category: "Food"},
		{ID: 1, Amount: decimal.NewFromInt(99), Date: "2024-01-01", Category: "Bills"},
	}}
	a := newTestApp(t, b)
	a.activeTab = tabExpenses

	m, cmd := a.Update(keyRunes("o"))
	a = execute(t, m.(App), cmd)

	assert.Equal(t, model.SortID, a.ctrl.SortKey())
	assert.Equal(t, 1, b.lists)
	rows := a.ctrl.Screen().Rows(screen.ExpensesBody)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, 0, a.inflight)
}

func TestExpenseCursorClampsAfterReload(t *testing.T) {
	b := &stubBackend{expenses: []model.Expense{{ID: 1}, {ID: 2}, {ID: 3}}}
	a := newTestApp(t, b)
	a.activeTab = tabExpenses
	require.NoError(t, a.ctrl.LoadExpenses(context.Background()))

	a = press(t, a, keyRunes("G"))
	assert.Equal(t, 2, a.exp.cursor)

	b.expenses = b.expenses[:1]
	m, cmd := a.Update(keyRunes("c"))
	a = execute(t, m.(App), cmd)
	assert.Equal(t, 0, a.exp.cursor)
}

func TestSettingsEditRejectsUnknownTheme(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	a := newTestApp(t, &stubBackend{})
	a.activeTab = tabSettings
	a.settings.cursor = settingsFieldTheme

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, a.settings.editing)
	a.settings.input.SetValue("no-such-theme")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, a.settings.editing)
	assert.Error(t, a.settings.saveErr)
	assert.Equal(t, config.DefaultConfig().Appearance.Theme, a.cfg.Appearance.Theme)
}

func TestSettingsEditSavesTimeout(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	a := newTestApp(t, &stubBackend{})
	a.activeTab = tabSettings
	a.settings.cursor = settingsFieldTimeout

	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a.settings.input.SetValue("15")
	a = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	require.NoError(t, a.settings.saveErr)
	assert.True(t, a.settings.saved)
	assert.Equal(t, 15, a.cfg.Server.TimeoutSec)

	onDisk, err := config.LoadFile(config.ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, 15, onDisk.Server.TimeoutSec)
}

func TestViewRendersEveryTab(t *testing.T) {
	a := newTestApp(t, &stubBackend{})
	for tab := tabDashboard; tab <= tabSettings; tab++ {
		a.activeTab = tab
		assert.NotEmpty(t, a.View(), "tab %d", tab)
	}
}
