package scheduling

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDurationMinutes is substituted by callers when a duration cannot be parsed.
const DefaultDurationMinutes = 60

const (
	maxBareMinutes = 180
	maxBareSeconds = 10800
)

var (
	minutesPattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:m|min|mins|minute|minutes)$`)
	numericPattern  = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	hoursPattern    = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(?:h|hr|hrs|hour|hours)$`)
	compoundPattern = regexp.MustCompile(`^(\d+)\s*(?:h|hr|hrs|hour|hours)\s*(\d+)\s*(?:m|min|mins|minute|minutes)$`)
)

// ToMinutes converts "30 min", "1 hour", "1.5 hours", "2hr", "1 hr 30 min" or a bare
// number into minutes. Bare numbers keep the legacy unit guess: up to 180 they are
// minutes, up to 10800 seconds, anything larger milliseconds.
func ToMinutes(raw string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))

	if m := minutesPattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
		}
		return checkDuration(int(math.Round(v)), raw)
	}
	if numericPattern.MatchString(s) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
		}
		return MinutesFromNumber(v)
	}
	if m := hoursPattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
		}
		return checkDuration(int(math.Round(v*60)), raw)
	}
	if m := compoundPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return checkDuration(h*60+mins, raw)
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
}

// MinutesFromNumber applies the bare-number unit guess used by ToMinutes.
func MinutesFromNumber(n float64) (int, error) {
	var minutes int
	switch {
	case n <= maxBareMinutes:
		minutes = int(math.Round(n))
	case n <= maxBareSeconds:
		minutes = int(math.Round(n / 60))
	default:
		minutes = int(math.Round(n / 60000))
	}
	return checkDuration(minutes, strconv.FormatFloat(n, 'f', -1, 64))
}

// DurationOrDefault returns ToMinutes(raw), or DefaultDurationMinutes when it fails.
func DurationOrDefault(raw string) int {
	minutes, err := ToMinutes(raw)
	if err != nil {
		return DefaultDurationMinutes
	}
	return minutes
}

func checkDuration(minutes int, raw string) (int, error) {
	if minutes <= 0 || minutes > MinutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	return minutes, nil
}

// EndFromStart returns (start + minutes) mod 1440. It wraps past midnight rather
// than failing; callers that need a same-day end check WrapsMidnight.
func EndFromStart(start TimeValue, minutes int) TimeValue {
	return start.Add(minutes)
}

// WrapsMidnight reports whether start + minutes reaches or passes midnight.
func WrapsMidnight(start TimeValue, minutes int) bool {
	return int(start)+minutes >= MinutesPerDay
}
