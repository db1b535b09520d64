package scheduling

import (
	"fmt"
	"strings"
)

// ValidationKind names the rule a ValidationError violates.
type ValidationKind string

const (
	KindEndBeforeStart   ValidationKind = "EndBeforeStart"
	KindOverlappingSlots ValidationKind = "OverlappingSlots"
	KindNoSlots          ValidationKind = "NoSlots"
	KindInvalidTimeGap   ValidationKind = "InvalidTimeGap"
)

// ValidationError is one problem found by WeeklyAvailability.Validate.
// Day is the lowercase weekday key, empty for week-level problems such as
// the time gap.
type ValidationError struct {
	Day     string         `json:"day,omitempty"`
	Kind    ValidationKind `json:"kind"`
	Slot    int            `json:"slot"`
	Message string         `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is the full list of problems in an availability record.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Err returns v as an error, or nil when v is empty.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Validate checks every available day and collects every violation instead of
// stopping at the first one. Intervals of unavailable days are ignored.
func (w WeeklyAvailability) Validate() ValidationErrors {
	var errs ValidationErrors
	if w.TimeGap < 0 || w.TimeGap > MaxTimeGap {
		errs = append(errs, ValidationError{
			Kind:    KindInvalidTimeGap,
			Slot:    -1,
			Message: fmt.Sprintf("time gap must be between 0 and %d minutes, got %d", MaxTimeGap, w.TimeGap),
		})
	}
	for _, d := range OrderedWeekdays {
		ds := w.Days[d]
		if !ds.IsAvailable {
			continue
		}
		key, name := WeekdayKey(d), d.String()
		if len(ds.Intervals) == 0 {
			errs = append(errs, ValidationError{
				Day:     key,
				Kind:    KindNoSlots,
				Slot:    -1,
				Message: fmt.Sprintf("%s: an available day needs at least one slot", name),
			})
			continue
		}
		for i, iv := range ds.Intervals {
			if !iv.Valid() {
				errs = append(errs, ValidationError{
					Day:     key,
					Kind:    KindEndBeforeStart,
					Slot:    i,
					Message: fmt.Sprintf("%s: slot %d end time %s must be after start time %s", name, i+1, iv.End, iv.Start),
				})
			}
		}
		for i := 0; i < len(ds.Intervals); i++ {
			a := ds.Intervals[i]
			if !a.Valid() {
				continue
			}
			for j := i + 1; j < len(ds.Intervals); j++ {
				b := ds.Intervals[j]
				if b.Valid() && a.Overlaps(b) {
					errs = append(errs, ValidationError{
						Day:     key,
						Kind:    KindOverlappingSlots,
						Slot:    j,
						Message: fmt.Sprintf("%s: slot %s overlaps slot %s", name, a, b),
					})
				}
			}
		}
	}
	return errs
}
