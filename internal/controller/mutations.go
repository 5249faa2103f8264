package controller

import (
	"context"
	"errors"

	"github.com/Tanishkag23/xpense/internal/model"
	"github.com/Tanishkag23/xpense/internal/screen"
)

// AddExpense submits the add-expense form. Amount, date and category are
// required; nothing is sent if any is empty. On success the form is
// cleared and the expense list and dashboard are re-rendered.
func (c *Controller) AddExpense(ctx context.Context) error {
	e := model.NewExpense{
		Amount:      c.scr.Input(screen.ExpAmount),
		Date:        c.scr.Input(screen.ExpDate),
		Category:    c.scr.Input(screen.ExpCategory),
		Description: c.scr.Input(screen.ExpDesc),
		Currency:    c.currency,
	}
	if e.Missing() {
		return c.invalid("add expense", msgFillExpense)
	}

	res, err := c.api.AddExpense(ctx, e)
	if err != nil {
		return c.transportFailure("add expense", err)
	}
	if !res.OK {
		return c.rejected("add expense", msgAddFailed)
	}

	c.scr.ClearInputs(screen.ExpenseFormInputs...)
	return errors.Join(c.LoadExpenses(ctx), c.LoadDashboard(ctx))
}

// DeleteTransaction deletes id and re-renders the expense list and the
// dashboard, whatever the server answered.
func (c *Controller) DeleteTransaction(ctx context.Context, id int64) error {
	if err := c.api.DeleteTransaction(ctx, id); err != nil {
		return c.transportFailure("delete transaction", err)
	}
	return errors.Join(c.LoadExpenses(ctx), c.LoadDashboard(ctx))
}

// SetBudget submits the budget form and re-renders the budget table.
func (c *Controller) SetBudget(ctx context.Context) error {
	b := model.BudgetInput{
		Category: c.scr.Input(screen.BudCategory),
		Amount:   c.scr.Input(screen.BudAmount),
	}
	res, err := c.api.SetBudget(ctx, b)
	if err != nil {
		return c.transportFailure("set budget", err)
	}
	if !res.OK {
		return c.rejected("set budget", msgBudgetFailed)
	}

	c.scr.ClearInputs(screen.BudgetFormInputs...)
	return c.LoadBudgets(ctx)
}

// SetIncome submits the income amount and re-renders the dashboard.
func (c *Controller) SetIncome(ctx context.Context) error {
	amount := c.scr.Input(screen.IncomeAmount)
	if amount == "" {
		return c.invalid("set income", msgEnterIncome)
	}

	res, err := c.api.SetIncome(ctx, amount)
	if err != nil {
		return c.transportFailure("set income", err)
	}
	if !res.OK {
		return c.rejected("set income", msgIncomeFailed)
	}
	return c.LoadDashboard(ctx)
}

// ApplyFilter re-renders the expense list with the current filter inputs.
func (c *Controller) ApplyFilter(ctx context.Context) error {
	return c.LoadExpenses(ctx)
}
