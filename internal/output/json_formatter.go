package output

import (
	"encoding/json"

	"github.com/rpgo/card-optimizer/internal/domain"
)

// JSONFormatter serializes results as pretty-printed JSON using the same
// field names as the HTTP API.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) FormatAllocation(summary *domain.AllocationSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}

func (j JSONFormatter) FormatComparison(report *domain.ComparisonReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
