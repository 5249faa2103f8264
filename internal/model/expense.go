// Package model defines the entities exchanged with the expense API.
package model

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is sent with every new expense unless config overrides it.
const DefaultCurrency = "INR"

// Expense is one row of the expense list.
type Expense struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Currency    string          `json:"currency,omitempty"`
}

// NewExpense holds the raw user input for the add-expense form.
// Values are kept as text; the server parses them.
type NewExpense struct {
	Amount      string
	Date        string
	Category    string
	Description string
	Currency    string
}

// Missing reports whether any required field (amount, date, category) is empty.
func (n NewExpense) Missing() bool {
	return n.Amount == "" || n.Date == "" || n.Category == ""
}

// ExpenseFilter narrows the expense list by substring matches done server-side.
type ExpenseFilter struct {
	Category    string
	Description string
}

// Trimmed returns the filter with surrounding whitespace removed.
func (f ExpenseFilter) Trimmed() ExpenseFilter {
	return ExpenseFilter{
		Category:    strings.TrimSpace(f.Category),
		Description: strings.TrimSpace(f.Description),
	}
}

// IsZero reports whether no filter is set.
func (f ExpenseFilter) IsZero() bool {
	return f.Category == "" && f.Description == ""
}

// SortKey selects the client-side ordering of rendered expense rows.
type SortKey string

const (
	SortNone     SortKey = ""
	SortID       SortKey = "id"
	SortDate     SortKey = "date"
	SortAmount   SortKey = "amount"
	SortCategory SortKey = "category"
)

// SortKeys lists the keys in the order the TUI cycles through them.
var SortKeys = []SortKey{SortNone, SortID, SortDate, SortAmount, SortCategory}

// ParseSortKey maps user input to a SortKey. Unknown values yield SortNone, false.
func ParseSortKey(s string) (SortKey, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, k := range SortKeys {
		if string(k) == s {
			return k, true
		}
	}
	return SortNone, false
}

// Next returns the key after k in SortKeys, wrapping around.
func (k SortKey) Next() SortKey {
	for i, cand := range SortKeys {
		if cand == k {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortNone
}

// SortExpenses orders items in place. SortNone keeps server order.
// Amounts sort descending; everything else ascending. Ties keep server order.
func SortExpenses(items []Expense, key SortKey) {
	var less func(a, b Expense) bool
	switch key {
	case SortID:
		less = func(a, b Expense) bool { return a.ID < b.ID }
	case SortDate:
		less = func(a, b Expense) bool { return a.Date < b.Date }
	case SortAmount:
		less = func(a, b Expense) bool { return a.Amount.GreaterThan(b.Amount) }
	case SortCategory:
		less = func(a, b Expense) bool {
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
	default:
		return
	}
	sort.SliceStable(items, func(i, j int) bool { return less(items[i], items[j]) })
}
