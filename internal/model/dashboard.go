package model

import "github.com/shopspring/decimal"

// CategoryTotal is the server-aggregated sum of expenses for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// DashboardSummary is the response of the dashboard endpoint.
// It deliberately has no balance field: balance is always derived.
type DashboardSummary struct {
	Income        decimal.Decimal `json:"income"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	ByCategory    []CategoryTotal `json:"byCategory"`
}

// Balance is income minus total expenses.
func (d DashboardSummary) Balance() decimal.Decimal {
	return d.Income.Sub(d.TotalExpenses)
}

// MaxCategoryTotal returns the largest category total, or zero.
func (d DashboardSummary) MaxCategoryTotal() decimal.Decimal {
	max := decimal.Zero
	for _, c := range d.ByCategory {
		if c.Total.GreaterThan(max) {
			max = c.Total
		}
	}
	return max
}
