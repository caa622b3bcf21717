package domain

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// MonthProjection holds the three strategy balances for one calendar month.
// It encodes as {"<Month>": {balances}}.
type MonthProjection struct {
	Month                       string
	NextBalanceOnMin            decimal.Decimal
	NextBalanceOnCurrentPayment decimal.Decimal
	NextBalanceOnSuggested      decimal.Decimal
}

// StrategyBalances is the value stored under a month name.
type StrategyBalances struct {
	NextBalanceOnMin            decimal.Decimal `json:"nextBalanceOnMin"`
	NextBalanceOnCurrentPayment decimal.Decimal `json:"nextBalanceOnCurrentPayment"`
	NextBalanceOnSuggested      decimal.Decimal `json:"nextBalanceOnSuggested"`
}

func (m MonthProjection) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]StrategyBalances{
		m.Month: {
			NextBalanceOnMin:            m.NextBalanceOnMin,
			NextBalanceOnCurrentPayment: m.NextBalanceOnCurrentPayment,
			NextBalanceOnSuggested:      m.NextBalanceOnSuggested,
		},
	})
}

func (m *MonthProjection) UnmarshalJSON(data []byte) error {
	var entry map[string]StrategyBalances
	if err := json.Unmarshal(data, &entry); err != nil {
		return err
	}
	if len(entry) != 1 {
		return fmt.Errorf("month projection must have exactly one month key, got %d", len(entry))
	}
	for month, b := range entry {
		*m = MonthProjection{
			Month:                       month,
			NextBalanceOnMin:            b.NextBalanceOnMin,
			NextBalanceOnCurrentPayment: b.NextBalanceOnCurrentPayment,
			NextBalanceOnSuggested:      b.NextBalanceOnSuggested,
		}
	}
	return nil
}

// CardProjection is the month-by-month comparison for a single card.
// Projection[0] is the current balance under all three strategies.
type CardProjection struct {
	Nickname   string            `json:"cardNickName"`
	Projection []MonthProjection `json:"projection"`
}

// ComparisonReport is the twelve-month comparison response.
type ComparisonReport struct {
	Progress []CardProjection `json:"progress"`
}

// Totals sums every card's balances for the month at index i.
func (r *ComparisonReport) Totals(i int) (onMin, onCurrent, onSuggested decimal.Decimal) {
	for _, card := range r.Progress {
		if i < 0 || i >= len(card.Projection) {
			continue
		}
		m := card.Projection[i]
		onMin = onMin.Add(m.NextBalanceOnMin)
		onCurrent = onCurrent.Add(m.NextBalanceOnCurrentPayment)
		onSuggested = onSuggested.Add(m.NextBalanceOnSuggested)
	}
	return onMin, onCurrent, onSuggested
}

// Months returns the month names of the first card's projection.
func (r *ComparisonReport) Months() []string {
	if len(r.Progress) == 0 {
		return nil
	}
	names := make([]string, len(r.Progress[0].Projection))
	for i, m := range r.Progress[0].Projection {
		names[i] = m.Month
	}
	return names
}
