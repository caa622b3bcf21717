// Package money holds the small set of decimal helpers shared by the
// calculation engine and the output formatters.
package money

import (
	"github.com/shopspring/decimal"
)

var (
	one             = decimal.NewFromInt(1)
	monthsTimesCent = decimal.NewFromInt(1200)
)

// MonthlyGrowthFactor converts an APR percentage into the one-month
// compounding factor 1 + apr/1200.
func MonthlyGrowthFactor(aprPercent decimal.Decimal) decimal.Decimal {
	return one.Add(aprPercent.Div(monthsTimesCent))
}

// FloorZero clamps negative amounts to zero.
func FloorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Min returns the smaller of two amounts
func Min(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Max returns the larger of two amounts
func Max(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

// Sum adds up a slice of amounts.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Format renders an amount as dollars with cents.
func Format(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
