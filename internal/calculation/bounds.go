package calculation

import (
	"github.com/rpgo/card-optimizer/pkg/money"
	"github.com/shopspring/decimal"
)

// Bounds is the effective payment range for one account.
type Bounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// NormalizeBounds clamps the minimum and maximum payment against the
// balance so that 0 <= Min <= Max <= balance. A nil max means "pay up to the
// balance". It never fails; upstream validation rejects non-positive input.
func NormalizeBounds(balance, minPayment decimal.Decimal, maxPayment *decimal.Decimal) Bounds {
	effMin := money.Min(balance, minPayment)
	effMax := balance
	if maxPayment != nil {
		effMax = money.Min(balance, *maxPayment)
	}
	effMax = money.Max(effMin, effMax)
	return Bounds{Min: effMin, Max: effMax}
}

// ClampPayment caps a payment at the outstanding balance.
func ClampPayment(balance, payment decimal.Decimal) decimal.Decimal {
	return money.Min(balance, payment)
}

// NormalizeAll applies NormalizeBounds element-wise. maxPayments may be nil
// or hold nil entries.
func NormalizeAll(balances, minPayments []decimal.Decimal, maxPayments []*decimal.Decimal) []Bounds {
	out := make([]Bounds, len(balances))
	for i, b := range balances {
		var maxP *decimal.Decimal
		if i < len(maxPayments) {
			maxP = maxPayments[i]
		}
		out[i] = NormalizeBounds(b, minPayments[i], maxP)
	}
	return out
}
