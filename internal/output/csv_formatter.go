package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/card-optimizer/internal/domain"
)

// CSVFormatter emits one row per card (allocation) or per card-month
// (comparison) with plain decimal values.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) FormatAllocation(summary *domain.AllocationSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Card", "Balance", "APR", "MinPayment", "SuggestedPayment", "NextBalanceOnSuggested", "NextBalanceOnMin", "NextBalanceOnCurrentPayment"})
	for _, card := range summary.UpdatedCards {
		_ = w.Write([]string{
			card.Nickname,
			card.Balance.String(),
			card.APR.String(),
			card.MinPayment.String(),
			card.SuggestedPayment.String(),
			card.NextBalanceOnSuggested.String(),
			card.NextBalanceOnMin.String(),
			card.NextBalanceOnCurrentPayment.String(),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c CSVFormatter) FormatComparison(report *domain.ComparisonReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Card", "Index", "Month", "NextBalanceOnMin", "NextBalanceOnCurrentPayment", "NextBalanceOnSuggested"})
	for _, card := range report.Progress {
		for i, m := range card.Projection {
			_ = w.Write([]string{
				card.Nickname,
				strconv.Itoa(i),
				m.Month,
				m.NextBalanceOnMin.String(),
				m.NextBalanceOnCurrentPayment.String(),
				m.NextBalanceOnSuggested.String(),
			})
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
