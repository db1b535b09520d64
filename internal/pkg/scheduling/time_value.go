package scheduling

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MinutesPerDay is the exclusive upper bound of a TimeValue.
const MinutesPerDay = 24 * 60

// TimeValue is a wall-clock time of day stored as minutes since midnight.
// Valid values are always within [0, MinutesPerDay).
type TimeValue int

// TimeStyle selects the textual form produced by TimeValue.Format.
type TimeStyle string

const (
	Style24h TimeStyle = "24h"
	Style12h TimeStyle = "12h"
)

// NewTimeValue builds a TimeValue from a 24-hour clock reading.
func NewTimeValue(hour, minute int) (TimeValue, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeFormat, hour, minute)
	}
	return TimeValue(hour*60 + minute), nil
}

// MustTimeValue is NewTimeValue for constant inputs; it panics on invalid input.
func MustTimeValue(hour, minute int) TimeValue {
	t, err := NewTimeValue(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTime accepts "HH:MM", "H:MM AM", "9:00am", "09:00PM", "9.30", "13:30:00" and "9 pm".
// A period marker on an hour above 12 is ignored since the hour is already 24-hour based,
// and hour 0 marked PM is read as 12 PM.
func ParseTime(input string) (TimeValue, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	s = strings.NewReplacer("a.m.", "am", "p.m.", "pm").Replace(s)

	period := ""
	switch {
	case strings.HasSuffix(s, "am"):
		period = "am"
	case strings.HasSuffix(s, "pm"):
		period = "pm"
	}
	if period != "" {
		s = strings.TrimSpace(strings.TrimSuffix(s, period))
	}
	s = strings.ReplaceAll(s, ".", ":")
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 || (len(parts) == 1 && period == "") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
	}

	hour, ok := parseDigits(parts[0], 1, 2)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
	}
	minute := 0
	if len(parts) >= 2 {
		if minute, ok = parseDigits(parts[1], 2, 2); !ok || minute > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
		}
	}
	if len(parts) == 3 {
		if sec, ok := parseDigits(parts[2], 2, 2); !ok || sec > 59 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
		}
	}

	if hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
	}
	switch period {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		switch {
		case hour == 0:
			hour = 12
		case hour < 12:
			hour += 12
		}
	}
	return TimeValue(hour*60 + minute), nil
}

func parseDigits(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// Minutes returns the minute-of-day value.
func (t TimeValue) Minutes() int { return int(t) }

func (t TimeValue) Hour() int { return int(t) / 60 }

func (t TimeValue) Minute() int { return int(t) % 60 }

// Valid reports whether t is within [0, MinutesPerDay).
func (t TimeValue) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

// Add shifts t by the given minutes, wrapping around midnight.
func (t TimeValue) Add(minutes int) TimeValue {
	v := (int(t) + minutes) % MinutesPerDay
	if v < 0 {
		v += MinutesPerDay
	}
	return TimeValue(v)
}

// Format renders t as "HH:MM" or "H:MM AM".
func (t TimeValue) Format(style TimeStyle) string {
	if style == Style12h {
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		marker := "AM"
		if t.Hour() >= 12 {
			marker = "PM"
		}
		return fmt.Sprintf("%d:%02d %s", h, t.Minute(), marker)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeValue) String() string {
	return t.Format(Style24h)
}

// CompareTime orders two TimeValues by minute of day.
func CompareTime(a, b TimeValue) int {
	return cmp.Compare(a, b)
}

// FormatDisplay normalizes a stored time string for display. Strings that cannot be
// parsed are returned unchanged so a bad record never breaks a read.
func FormatDisplay(raw string, style TimeStyle) string {
	t, err := ParseTime(raw)
	if err != nil {
		return raw
	}
	return t.Format(style)
}

func (t TimeValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(Style24h))
}

// UnmarshalJSON accepts any ParseTime spelling or a bare minute-of-day number.
func (t *TimeValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeFormat, string(data))
	}
	switch v := raw.(type) {
	case string:
		parsed, err := ParseTime(v)
		if err != nil {
			return err
		}
		*t = parsed
	case float64:
		if v != float64(int(v)) || !TimeValue(int(v)).Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, v)
		}
		*t = TimeValue(int(v))
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTimeFormat, string(data))
	}
	return nil
}
