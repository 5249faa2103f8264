package model

import "github.com/shopspring/decimal"

// Budget is a spending limit for one category. Budgets are upserted by category.
type Budget struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// BudgetInput is the raw text of the set-budget form.
type BudgetInput struct {
	Category string
	Amount   string
}
