package scheduling

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// Interval is a [Start, End) window within a single day.
type Interval struct {
	Start TimeValue
	End   TimeValue
}

// NewInterval fails with ErrInvalidRange unless start < end. Zero-length and
// past-midnight intervals are rejected.
func NewInterval(start, end TimeValue) (Interval, error) {
	if !start.Valid() || !end.Valid() {
		return Interval{}, fmt.Errorf("%w: %s-%s", ErrInvalidTimeFormat, start, end)
	}
	if start >= end {
		return Interval{}, fmt.Errorf("%w: %s-%s", ErrInvalidRange, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// MustInterval is NewInterval for constant inputs; it panics on invalid input.
func MustInterval(start, end TimeValue) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// ParseInterval parses both endpoints with ParseTime and then applies NewInterval.
func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTime(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTime(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

// ParseIntervalRange parses "10:00-11:00" or "9:00 AM - 10:30 AM".
func ParseIntervalRange(s string) (Interval, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return Interval{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return ParseInterval(start, end)
}

// Valid reports whether both endpoints are valid and Start < End.
func (iv Interval) Valid() bool {
	return iv.Start.Valid() && iv.End.Valid() && iv.Start < iv.End
}

// Empty reports whether the interval has no length. Stored records with equal
// start and end carry no usable timing.
func (iv Interval) Empty() bool {
	return iv.Start == iv.End
}

// Overlaps uses strict inequalities: intervals that only touch do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// IsWithin reports whether Start <= point < End.
func (iv Interval) IsWithin(point TimeValue) bool {
	return iv.Start <= point && point < iv.End
}

// Contains reports whether other lies entirely inside iv, endpoints included.
func (iv Interval) Contains(other Interval) bool {
	return iv.Start <= other.Start && other.End <= iv.End
}

// Minutes returns the length of the interval.
func (iv Interval) Minutes() int {
	return int(iv.End - iv.Start)
}

func (iv Interval) String() string {
	return iv.Start.String() + "-" + iv.End.String()
}

// SortIntervals orders intervals by start, then by end.
func SortIntervals(ivs []Interval) {
	slices.SortFunc(ivs, func(a, b Interval) int {
		if c := CompareTime(a.Start, b.Start); c != 0 {
			return c
		}
		return CompareTime(a.End, b.End)
	})
}

type intervalJSON struct {
	StartTime *TimeValue `json:"startTime"`
	EndTime   *TimeValue `json:"endTime"`
}

func (iv Interval) MarshalJSON() ([]byte, error) {
	return json.Marshal(intervalJSON{StartTime: &iv.Start, EndTime: &iv.End})
}

// UnmarshalJSON only parses the endpoints. Ordering is reported by
// WeeklyAvailability.Validate so every problem surfaces at once.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	var raw intervalJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.StartTime == nil || raw.EndTime == nil {
		return fmt.Errorf("%w: slot requires startTime and endTime", ErrInvalidTimeFormat)
	}
	iv.Start = *raw.StartTime
	iv.End = *raw.EndTime
	return nil
}
