package times

import (
	"time"
)

const (
	YearMonthDayLayout = "2006-01-02"
)

// ParseDay parses a calendar date in the YYYY-MM-DD layout.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(YearMonthDayLayout, s)
}

// FormatDay formats a timestamp as a YYYY-MM-DD calendar date.
func FormatDay(t time.Time) string {
	return t.Format(YearMonthDayLayout)
}

// NormalizeDay reparses a date string through the YYYY-MM-DD layout so that
// every stored date carries the exact same format. The second return value
// reports whether the input was a valid date.
func NormalizeDay(s string) (string, bool) {
	t, err := ParseDay(s)
	if err != nil {
		return "", false
	}

	return FormatDay(t), true
}
