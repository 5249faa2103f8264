// Package controller drives the expense client: it runs the session flow,
// fetches and renders the four views into a screen.Screen, and handles the
// mutations the user can trigger. Every fetch replaces the region it feeds;
// nothing is cached between renders.
package controller

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Tanishkag23/xpense/internal/model"
	"github.com/Tanishkag23/xpense/internal/screen"
	"github.com/Tanishkag23/xpense/internal/session"
)

// Backend is the server API the controller talks to. *api.Client
// implements it.
type Backend interface {
	Me(ctx context.Context) (model.Identity, error)
	Login(ctx context.Context, creds model.Credentials) (model.LoginResult, error)
	Signup(ctx context.Context, creds model.Credentials) (model.Ack, error)
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) (model.DashboardSummary, error)
	ListExpenses(ctx context.Context, f model.ExpenseFilter) ([]model.Expense, error)
	AddExpense(ctx context.Context, e model.NewExpense) (model.Ack, error)
	DeleteTransaction(ctx context.Context, id int64) error
	ListBudgets(ctx context.Context) ([]model.Budget, error)
	SetBudget(ctx context.Context, b model.BudgetInput) (model.Ack, error)
	SetIncome(ctx context.Context, amount string) (model.Ack, error)
}

// Options configures a Controller.
type Options struct {
	Policy       session.Policy
	DemoPassword string
	Currency     string // defaults to model.DefaultCurrency
	Sort         model.SortKey
	Logger       *zerolog.Logger
}

// Controller is safe for concurrent use. Overlapping renders of the same
// region all apply; whichever finishes last is what the screen shows.
type Controller struct {
	api      Backend
	scr      *screen.Screen
	policy   session.Policy
	demoPass string
	currency string
	log      zerolog.Logger

	mu    sync.Mutex
	state session.State
	sort  model.SortKey
}

// New returns a controller that starts Unauthenticated.
func New(b Backend, scr *screen.Screen, opts Options) *Controller {
	currency := opts.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}
	l := log.With().Str("component", "controller").Logger()
	if opts.Logger != nil {
		l = *opts.Logger
	}
	c := &Controller{
		api:      b,
		scr:      scr,
		policy:   opts.Policy,
		demoPass: opts.DemoPassword,
		currency: currency,
		log:      l,
		sort:     opts.Sort,
	}
	c.setState(session.Guest())
	return c
}

// Screen returns the screen the controller writes to.
func (c *Controller) Screen() *screen.Screen { return c.scr }

// State returns the current session state.
func (c *Controller) State() session.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) setState(s session.State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
	c.scr.ApplySession(session.Project(s))
}

// SortKey returns the ordering applied to the expense table.
func (c *Controller) SortKey() model.SortKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sort
}

// SetSortKey changes the expense ordering. It takes effect on the next
// expense render.
func (c *Controller) SetSortKey(k model.SortKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sort = k
}
