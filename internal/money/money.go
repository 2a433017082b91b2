// Package money provides the shared monetary rounding helpers used by all
// calculation packages. Values are plain float64 amounts in major currency
// units; rounding is half-up to the nearest cent.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// RoundCents rounds a monetary value to 2 decimal places, half-up.
// Non-finite values are returned unchanged so callers keep control of
// degenerate-input policy.
func RoundCents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// RoundPercent rounds a percentage value to 2 decimal places.
// Same policy as RoundCents; kept separate so call sites read correctly.
func RoundPercent(v float64) float64 {
	return RoundCents(v)
}

// Cents converts a major-unit amount to integer cents, rounding half-up.
// Used at the formatting boundary.
func Cents(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Shift(2).Round(0).IntPart()
}
