// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"

	fmoney "fincalc/internal/money"
)

// FormatUSD formats a dollar amount with currency symbol and thousands
// separators, e.g. 1520.06 -> "$1,520.06".
func FormatUSD(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	if math.IsInf(v, 0) {
		return "∞"
	}
	return money.New(fmoney.Cents(v), money.USD).Display()
}

// FormatPercent formats a percentage value, e.g. 33.3 -> "33.30%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatMonths formats a month count as years and months,
// e.g. 31 -> "2y 7m", 12 -> "1y", 7 -> "7m".
func FormatMonths(months int) string {
	if months <= 0 {
		return "0m"
	}
	years := months / 12
	rest := months % 12
	switch {
	case years > 0 && rest > 0:
		return fmt.Sprintf("%dy %dm", years, rest)
	case years > 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dm", rest)
	}
}
