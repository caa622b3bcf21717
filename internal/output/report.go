package output

import (
	"io"

	"github.com/rpgo/card-optimizer/internal/domain"
)

// WriteAllocation renders an allocation summary in the named format.
func WriteAllocation(w io.Writer, format string, summary *domain.AllocationSummary) error {
	f, err := GetFormatterByName(format)
	if err != nil {
		return err
	}
	data, err := f.FormatAllocation(summary)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteComparison renders a comparison report in the named format.
func WriteComparison(w io.Writer, format string, report *domain.ComparisonReport) error {
	f, err := GetFormatterByName(format)
	if err != nil {
		return err
	}
	data, err := f.FormatComparison(report)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
