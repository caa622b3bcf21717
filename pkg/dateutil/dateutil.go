package dateutil

import (
	"time"
)

// MonthSequence returns n consecutive English month names starting at the
// month of start, wrapping from December back to January.
func MonthSequence(start time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	names := make([]string, n)
	m := start.Month()
	for i := 0; i < n; i++ {
		names[i] = m.String()
		m = NextMonth(m)
	}
	return names
}

// NextMonth returns the calendar month after m.
func NextMonth(m time.Month) time.Month {
	if m == time.December {
		return time.January
	}
	return m + 1
}

// MonthKey identifies a calendar month as YYYY-MM.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
