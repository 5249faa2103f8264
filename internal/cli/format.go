// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a money value with exactly two decimals, no currency
// symbol and no thousands separators. Halves round away from zero:
// 5 -> "5.00", 5.005 -> "5.01", -5.005 -> "-5.01".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatAmountText formats a raw numeric string the same way as FormatAmount.
// Text that is not a number is returned unchanged.
func FormatAmountText(s string) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return s
	}
	return FormatAmount(d)
}

// FormatNumber adds comma separators to an integer count.
// e.g., 1234567 -> "1,234,567". Not used for money.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// MaskSecret hides all but the edges of a secret for display.
func MaskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) > 16 {
		return s[:4] + "..." + s[len(s)-4:]
	}
	return "****"
}
