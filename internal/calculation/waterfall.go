package calculation

import (
	"sort"

	"github.com/rpgo/card-optimizer/pkg/money"
	"github.com/shopspring/decimal"
)

// WorkingCard is the mutable per-simulation view of one account for a
// single month: its start-of-month balance and the payment planned against it.
type WorkingCard struct {
	Balance decimal.Decimal
	APR     decimal.Decimal
	Payment decimal.Decimal
}

// WaterfallResult is the outcome of one month of overflow reallocation.
type WaterfallResult struct {
	Cards []WorkingCard
	// Overflow is the total removed from accounts that would be overpaid.
	Overflow decimal.Decimal
	// Unspent is the part of Overflow no account had room for.
	Unspent decimal.Decimal
}

// Reallocate caps every payment at its account's balance and routes the
// excess to the remaining accounts in descending APR order, ties kept in
// input order, each taking at most what is left of its balance. The input
// slice is not modified. The payments in the result total the input
// payments minus Unspent.
func Reallocate(cards []WorkingCard) WaterfallResult {
	out := make([]WorkingCard, len(cards))
	copy(out, cards)

	pool := decimal.Zero
	for i := range out {
		if out[i].Balance.Sub(out[i].Payment).LessThanOrEqual(decimal.Zero) {
			pool = pool.Add(out[i].Payment.Sub(out[i].Balance))
			out[i].Payment = money.FloorZero(out[i].Balance)
		}
	}
	overflow := pool

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return out[order[a]].APR.GreaterThan(out[order[b]].APR)
	})

	for _, i := range order {
		if !pool.IsPositive() {
			break
		}
		room := out[i].Balance.Sub(out[i].Payment)
		if !room.IsPositive() {
			continue
		}
		take := money.Min(room, pool)
		out[i].Payment = out[i].Payment.Add(take)
		pool = pool.Sub(take)
	}

	return WaterfallResult{Cards: out, Overflow: overflow, Unspent: pool}
}
