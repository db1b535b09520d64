package scheduling

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical layout used for stored dates and lock keys.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	DateLayout,
	"02/01/06",
	"02/01/2006",
	"2/1/06",
	"2/1/2006",
}

// ParseDate accepts "YYYY-MM-DD", "DD/MM/YY", "DD/MM/YYYY" and RFC3339 timestamps.
// The result is the civil date at midnight UTC; any clock or offset in an RFC3339
// input is dropped after taking its calendar date.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty date", ErrInvalidDate)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return civilDate(t), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// FormatDate renders a date in DateLayout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// At places a minute-of-day on date in loc.
func At(date time.Time, t TimeValue, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
