// Package numeric provides number formatting for LaTeX rendering.
// Formatting uses half-up rounding so that rendered values match what a
// hand calculation would show, rather than Go's default half-even behavior.
package numeric

import (
	"github.com/shopspring/decimal"

	"eurocalc/internal/errors"
)

// StringFixed formats a value with a fixed number of decimals, rounding half-up
func StringFixed(v float64, decimals int) string {
	return decimal.NewFromFloat(v).StringFixed(int32(decimals))
}

// StringFixedWithUnit formats a value followed by a LaTeX unit annotation
func StringFixedWithUnit(v float64, decimals int, unit string) string {
	s := StringFixed(v, decimals)
	if unit == "" {
		return s
	}
	return s + `\ ` + unit
}

// Round returns the value rounded half-up to the given number of decimals
func Round(v float64, decimals int) float64 {
	f, _ := decimal.NewFromFloat(v).Round(int32(decimals)).Float64()
	return f
}

// Ratio divides numerator by denominator, rejecting a zero denominator
func Ratio(numerator, denominator float64) (float64, error) {
	if denominator == 0 {
		return 0, errors.Domain("ratio denominator is zero")
	}
	return numerator / denominator, nil
}
