package output

import (
	"github.com/rpgo/card-optimizer/internal/domain"
	"github.com/shopspring/decimal"
)

// Strategy names used in comparison summaries.
const (
	StrategyMinimum   = "minimum"
	StrategyCurrent   = "current"
	StrategySuggested = "suggested"
)

// ComparisonSummary condenses a comparison report into its final totals.
type ComparisonSummary struct {
	Months          int
	StartBalance    decimal.Decimal
	EndOnMinimum    decimal.Decimal
	EndOnCurrent    decimal.Decimal
	EndOnSuggested  decimal.Decimal
	BestStrategy    string
	SavedVsMinimum  decimal.Decimal
	SavedVsCurrent  decimal.Decimal
	PayoffSuggested map[string]int // card nickname -> first month index at zero, absent if never
}

// AnalyzeComparison totals the first and last month of the report and picks
// the strategy with the lowest ending balance. Ties favor the suggested
// strategy, then current.
func AnalyzeComparison(report *domain.ComparisonReport) ComparisonSummary {
	months := report.Months()
	if len(months) == 0 {
		return ComparisonSummary{}
	}
	last := len(months) - 1
	start, _, _ := report.Totals(0)
	onMin, onCurrent, onSuggested := report.Totals(last)

	best := StrategySuggested
	bestValue := onSuggested
	if onCurrent.LessThan(bestValue) {
		best, bestValue = StrategyCurrent, onCurrent
	}
	if onMin.LessThan(bestValue) {
		best = StrategyMinimum
	}

	payoff := make(map[string]int)
	for _, card := range report.Progress {
		for i, m := range card.Projection {
			if i > 0 && m.NextBalanceOnSuggested.IsZero() {
				payoff[card.Nickname] = i
				break
			}
		}
	}

	return ComparisonSummary{
		Months:          last,
		StartBalance:    start,
		EndOnMinimum:    onMin,
		EndOnCurrent:    onCurrent,
		EndOnSuggested:  onSuggested,
		BestStrategy:    best,
		SavedVsMinimum:  onMin.Sub(onSuggested),
		SavedVsCurrent:  onCurrent.Sub(onSuggested),
		PayoffSuggested: payoff,
	}
}
