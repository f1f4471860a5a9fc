// Package money rounds generated amounts the way a ledger expects them:
// half-up on the shortest decimal representation of the float.
package money

import "github.com/shopspring/decimal"

const (
	MoneyPlaces int32 = 2
	RatePlaces  int32 = 6
)

// Round converts v through its shortest decimal form and rounds half-up
// (away from zero) to places.
func Round(v float64, places int32) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(places)
}

// Amount rounds v to currency precision.
func Amount(v float64) decimal.Decimal {
	return Round(v, MoneyPlaces)
}

// Rate rounds v to exchange-rate precision.
func Rate(v float64) decimal.Decimal {
	return Round(v, RatePlaces)
}

// Extend returns unit * qty.
func Extend(unit decimal.Decimal, qty int) decimal.Decimal {
	return unit.Mul(decimal.NewFromInt(int64(qty)))
}

// FormatAmount renders d with exactly two decimals, e.g. "2252.50".
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(MoneyPlaces)
}

// FormatRate renders d with exactly six decimals.
func FormatRate(d decimal.Decimal) string {
	return d.StringFixed(RatePlaces)
}
