package scheduling

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

const (
	// MaxTimeGap is the largest buffer, in minutes, allowed between back-to-back bookings.
	MaxTimeGap = 120
)

// DefaultSlot is the interval a day receives when it is created or re-enabled.
var DefaultSlot = Interval{Start: TimeValue(9 * 60), End: TimeValue(17 * 60)}

// DaySchedule is one weekday's availability. Intervals are ignored while
// IsAvailable is false.
type DaySchedule struct {
	IsAvailable bool
	Intervals   []Interval
}

// DefaultDaySchedule returns the 09:00-17:00 slot, available on weekdays only.
func DefaultDaySchedule(d time.Weekday) DaySchedule {
	return DaySchedule{
		IsAvailable: !isWeekend(d),
		Intervals:   []Interval{DefaultSlot},
	}
}

// Clone returns a copy that shares no memory with ds.
func (ds DaySchedule) Clone() DaySchedule {
	return DaySchedule{IsAvailable: ds.IsAvailable, Intervals: slices.Clone(ds.Intervals)}
}

type dayScheduleJSON struct {
	IsAvailable *bool      `json:"isAvailable,omitempty"`
	Slots       []Interval `json:"slots"`
}

func (ds DaySchedule) MarshalJSON() ([]byte, error) {
	slots := ds.Intervals
	if slots == nil {
		slots = []Interval{}
	}
	available := ds.IsAvailable
	return json.Marshal(dayScheduleJSON{IsAvailable: &available, Slots: slots})
}

// UnmarshalJSON treats a missing isAvailable flag as true when slots are present.
func (ds *DaySchedule) UnmarshalJSON(data []byte) error {
	var raw dayScheduleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ds.Intervals = raw.Slots
	if raw.IsAvailable != nil {
		ds.IsAvailable = *raw.IsAvailable
	} else {
		ds.IsAvailable = len(raw.Slots) > 0
	}
	return nil
}

// WeeklyAvailability is a user's standing availability, one DaySchedule per weekday
// indexed by time.Weekday, plus the minimum buffer between bookings.
type WeeklyAvailability struct {
	Days    [7]DaySchedule
	TimeGap int
}

// DefaultWeeklyAvailability is what a user gets on first access.
func DefaultWeeklyAvailability() WeeklyAvailability {
	var w WeeklyAvailability
	for _, d := range OrderedWeekdays {
		w.Days[d] = DefaultDaySchedule(d)
	}
	return w
}

// Day returns a copy of the schedule for d.
func (w WeeklyAvailability) Day(d time.Weekday) DaySchedule {
	return w.Days[d].Clone()
}

// ForDate resolves the schedule for the weekday of date.
func (w WeeklyAvailability) ForDate(date time.Time) DaySchedule {
	return w.Day(date.Weekday())
}

// Clone returns a deep copy of w.
func (w WeeklyAvailability) Clone() WeeklyAvailability {
	out := WeeklyAvailability{TimeGap: w.TimeGap}
	for i := range w.Days {
		out.Days[i] = w.Days[i].Clone()
	}
	return out
}

func (w WeeklyAvailability) withDay(d time.Weekday, ds DaySchedule) WeeklyAvailability {
	out := w.Clone()
	out.Days[d] = ds
	return out
}

const timeGapKey = "timegap"

func (w WeeklyAvailability) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(OrderedWeekdays)+1)
	for _, d := range OrderedWeekdays {
		out[WeekdayKey(d)] = w.Days[d]
	}
	out["timeGap"] = w.TimeGap
	return json.Marshal(out)
}

// UnmarshalJSON accepts day keys in any case. Days that are absent fall back to
// DefaultDaySchedule; unknown keys are rejected.
func (w *WeeklyAvailability) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := DefaultWeeklyAvailability()
	seen := make(map[time.Weekday]string, len(raw))
	for key, value := range raw {
		if strings.EqualFold(key, timeGapKey) || strings.EqualFold(key, "time_gap") {
			if err := json.Unmarshal(value, &out.TimeGap); err != nil {
				return fmt.Errorf("%w: %s", ErrInvalidTimeGap, string(value))
			}
			continue
		}
		d, err := ParseWeekday(key)
		if err != nil {
			return err
		}
		if prev, dup := seen[d]; dup {
			return fmt.Errorf("%w: %q and %q name the same day", ErrUnknownWeekday, prev, key)
		}
		seen[d] = key
		var ds DaySchedule
		if err := json.Unmarshal(value, &ds); err != nil {
			return fmt.Errorf("%s: %w", WeekdayKey(d), err)
		}
		out.Days[d] = ds
	}
	*w = out
	return nil
}
