package controller

import (
	"context"
	"errors"
	"strconv"

	"github.com/Tanishkag23/xpense/internal/cli"
	"github.com/Tanishkag23/xpense/internal/model"
	"github.com/Tanishkag23/xpense/internal/screen"
)

// LoadDashboard fetches the summary once and writes both the dashboard and
// the report regions from it.
func (c *Controller) LoadDashboard(ctx context.Context) error {
	d, err := c.api.Dashboard(ctx)
	if err != nil {
		return c.transportFailure("load dashboard", err)
	}

	income := cli.FormatAmount(d.Income)
	expenses := cli.FormatAmount(d.TotalExpenses)
	balance := cli.FormatAmount(d.Balance())
	rows := categoryRows(d)

	c.scr.SetText(screen.IncomeBox, income)
	c.scr.SetText(screen.ExpenseBox, expenses)
	c.scr.SetText(screen.BalanceBox, balance)
	c.scr.ReplaceRows(screen.ByCategoryBody, rows)

	c.scr.SetText(screen.RIncome, income)
	c.scr.SetText(screen.RExpense, expenses)
	c.scr.SetText(screen.RBalance, balance)
	c.scr.ReplaceRows(screen.ReportBody, rows)
	return nil
}

func categoryRows(d model.DashboardSummary) []screen.Row {
	peak := d.MaxCategoryTotal()
	rows := make([]screen.Row, 0, len(d.ByCategory))
	for _, ct := range d.ByCategory {
		var w float64
		if peak.IsPositive() && ct.Total.IsPositive() {
			w = ct.Total.Div(peak).InexactFloat64()
		}
		rows = append(rows, screen.Row{
			Cells:  []string{ct.Category, cli.FormatAmount(ct.Total)},
			Weight: w,
		})
	}
	return rows
}

// Filter returns the trimmed expense filter inputs.
func (c *Controller) Filter() model.ExpenseFilter {
	return model.ExpenseFilter{
		Category:    c.scr.Input(screen.FilterCategory),
		Description: c.scr.Input(screen.FilterDesc),
	}.Trimmed()
}

// LoadExpenses fetches the expense list for the current filters and
// replaces the expense table. Rows carry the expense id for deletion.
func (c *Controller) LoadExpenses(ctx context.Context) error {
	items, err := c.api.ListExpenses(ctx, c.Filter())
	if err != nil {
		return c.transportFailure("load expenses", err)
	}

	model.SortExpenses(items, c.SortKey())
	rows := make([]screen.Row, 0, len(items))
	for _, e := range items {
		rows = append(rows, screen.Row{
			ID:    e.ID,
			Cells: []string{strconv.FormatInt(e.ID, 10), cli.FormatAmount(e.Amount), e.Date, e.Category, e.Description},
		})
	}
	c.scr.ReplaceRows(screen.ExpensesBody, rows)
	return nil
}

// LoadBudgets fetches every budget and replaces the budget table.
func (c *Controller) LoadBudgets(ctx context.Context) error {
	items, err := c.api.ListBudgets(ctx)
	if err != nil {
		return c.transportFailure("load budgets", err)
	}

	rows := make([]screen.Row, 0, len(items))
	for _, b := range items {
		rows = append(rows, screen.Row{
			Cells: []string{b.Category, cli.FormatAmount(b.Amount)},
		})
	}
	c.scr.ReplaceRows(screen.BudgetsBody, rows)
	return nil
}

// RefreshAll renders dashboard, expenses and budgets in that order. A
// failing view does not stop the others; all errors are returned joined.
func (c *Controller) RefreshAll(ctx context.Context) error {
	return errors.Join(
		c.LoadDashboard(ctx),
		c.LoadExpenses(ctx),
		c.LoadBudgets(ctx),
	)
}
