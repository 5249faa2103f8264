package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Tanishkag23/xpense/internal/model"
)

// Endpoint paths.
const (
	PathMe                = "/api/me"
	PathLogin             = "/api/login"
	PathSignup            = "/api/signup"
	PathLogout            = "/api/logout"
	PathDashboard         = "/api/dashboard"
	PathExpensesList      = "/api/expenses/list"
	PathExpensesAdd       = "/api/expenses/add"
	PathTransactionDelete = "/api/transactions/delete"
	PathBudgetsList       = "/api/budgets/list"
	PathBudgetsSet        = "/api/budgets/set"
	PathIncomeSet         = "/api/income/set"
)

func post(form url.Values) *Options {
	return &Options{Method: http.MethodPost, Form: form}
}

func credentialsForm(c model.Credentials) url.Values {
	return url.Values{
		"username": {c.Username},
		"password": {c.Password},
	}
}

// Me asks the server who the current session belongs to.
func (c *Client) Me(ctx context.Context) (model.Identity, error) {
	var id model.Identity
	err := c.decodeInto(ctx, PathMe, nil, &id)
	return id, err
}

// Login submits credentials. A rejected login is OK=false with a nil error.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.LoginResult, error) {
	var res model.LoginResult
	err := c.ack(ctx, PathLogin, post(credentialsForm(creds)), &res)
	return res, err
}

// Signup creates an account. It does not log in.
func (c *Client) Signup(ctx context.Context, creds model.Credentials) (model.Ack, error) {
	var res model.Ack
	err := c.ack(ctx, PathSignup, post(credentialsForm(creds)), &res)
	return res, err
}

// Logout clears the server-side session. The response body is ignored.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.Call(ctx, PathLogout, post(nil))
	return err
}

// Dashboard fetches income, total expenses and per-category totals.
func (c *Client) Dashboard(ctx context.Context) (model.DashboardSummary, error) {
	var d model.DashboardSummary
	err := c.decodeInto(ctx, PathDashboard, nil, &d)
	return d, err
}

// ExpenseListPath builds the list path, omitting empty filters.
// With no filters the bare list path is returned.
func ExpenseListPath(f model.ExpenseFilter) string {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Description != "" {
		q.Set("desc", f.Description)
	}
	if len(q) == 0 {
		return PathExpensesList
	}
	return PathExpensesList + "?" + q.Encode()
}

// ListExpenses fetches the filtered expense list.
func (c *Client) ListExpenses(ctx context.Context, f model.ExpenseFilter) ([]model.Expense, error) {
	var items []model.Expense
	err := c.decodeInto(ctx, ExpenseListPath(f), nil, &items)
	return items, err
}

// AddExpense creates an expense from raw form input.
func (c *Client) AddExpense(ctx context.Context, e model.NewExpense) (model.Ack, error) {
	currency := e.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}
	form := url.Values{
		"amount":      {e.Amount},
		"date":        {e.Date},
		"category":    {e.Category},
		"description": {e.Description},
		"currency":    {currency},
	}
	var res model.Ack
	err := c.ack(ctx, PathExpensesAdd, post(form), &res)
	return res, err
}

// DeleteTransaction deletes by id. Issued as a plain GET with the id in the
// query, and the response body is ignored.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) error {
	_, err := c.Call(ctx, PathTransactionDelete+"?id="+strconv.FormatInt(id, 10), nil)
	return err
}

// ListBudgets fetches every budget.
func (c *Client) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	var items []model.Budget
	err := c.decodeInto(ctx, PathBudgetsList, nil, &items)
	return items, err
}

// SetBudget upserts the budget for a category.
func (c *Client) SetBudget(ctx context.Context, b model.BudgetInput) (model.Ack, error) {
	form := url.Values{
		"category": {b.Category},
		"amount":   {b.Amount},
	}
	var res model.Ack
	err := c.ack(ctx, PathBudgetsSet, post(form), &res)
	return res, err
}

// SetIncome records the income amount.
func (c *Client) SetIncome(ctx context.Context, amount string) (model.Ack, error) {
	var res model.Ack
	err := c.ack(ctx, PathIncomeSet, post(url.Values{"amount": {amount}}), &res)
	return res, err
}
