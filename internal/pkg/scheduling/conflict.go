package scheduling

import (
	"fmt"
	"time"
)

// DecisionKind is the outcome of a booking check. Every kind is a normal result;
// only malformed input is reported as an error.
type DecisionKind string

const (
	DecisionAvailable           DecisionKind = "Available"
	DecisionUnavailable         DecisionKind = "Unavailable"
	DecisionOutsideAvailability DecisionKind = "OutsideAvailability"
	DecisionConflict            DecisionKind = "Conflict"
	DecisionInsufficientGap     DecisionKind = "InsufficientGap"
)

type Decision struct {
	Kind         DecisionKind `json:"decision"`
	Message      string       `json:"message,omitempty"`
	ConflictWith *Interval    `json:"conflictWith,omitempty"`
}

// OK reports whether the booking may proceed.
func (d Decision) OK() bool {
	return d.Kind == DecisionAvailable
}

// BookingRequest is a proposed booking on a calendar date.
type BookingRequest struct {
	Date           time.Time
	Interval       Interval
	DurationSource string
}

// Check runs CheckConflict for the request.
func (r BookingRequest) Check(avail WeeklyAvailability, existing []Interval) Decision {
	return CheckConflict(r.Date, r.Interval, avail, existing)
}

// CheckConflict decides whether iv can be booked on date given the owner's weekly
// availability and the intervals already booked on that date. Checks run in order:
// day availability, containment in a single slot, overlap with an existing
// booking (first one wins), then the time gap.
func CheckConflict(date time.Time, iv Interval, avail WeeklyAvailability, existing []Interval) Decision {
	day := date.Weekday()
	ds := avail.Day(day)
	if !ds.IsAvailable {
		return Decision{
			Kind:    DecisionUnavailable,
			Message: fmt.Sprintf("not available on %s", day),
		}
	}
	if !iv.Valid() {
		return Decision{
			Kind:    DecisionOutsideAvailability,
			Message: fmt.Sprintf("requested interval %s is not a valid same-day range", iv),
		}
	}

	if len(ds.Intervals) > 0 && !containedInAny(ds.Intervals, iv) {
		return Decision{
			Kind:    DecisionOutsideAvailability,
			Message: fmt.Sprintf("%s is outside the available slots on %s", iv, day),
		}
	}

	for _, b := range existing {
		if b.Empty() {
			continue
		}
		if overlapsBounds(iv, b) {
			conflict := b
			return Decision{
				Kind:         DecisionConflict,
				Message:      fmt.Sprintf("%s overlaps an existing booking %s", iv, b),
				ConflictWith: &conflict,
			}
		}
	}

	if gap := avail.TimeGap; gap > 0 {
		for _, b := range existing {
			if b.Empty() {
				continue
			}
			bStart, bEnd := bounds(b)
			after := int(iv.Start) - bEnd
			before := bStart - int(iv.End)
			if (after >= 0 && after < gap) || (before >= 0 && before < gap) {
				conflict := b
				return Decision{
					Kind:         DecisionInsufficientGap,
					Message:      fmt.Sprintf("%s needs %d minutes between bookings around %s", iv, gap, b),
					ConflictWith: &conflict,
				}
			}
		}
	}

	return Decision{Kind: DecisionAvailable}
}

func containedInAny(slots []Interval, iv Interval) bool {
	for _, s := range slots {
		if s.Valid() && s.Contains(iv) {
			return true
		}
	}
	return false
}

// bounds returns the minute range of a booking on its start date. Overnight
// bookings (End < Start) run to the end of the day.
func bounds(iv Interval) (int, int) {
	if iv.End < iv.Start {
		return int(iv.Start), MinutesPerDay
	}
	return int(iv.Start), int(iv.End)
}

func overlapsBounds(a, b Interval) bool {
	aStart, aEnd := bounds(a)
	bStart, bEnd := bounds(b)
	return aStart < bEnd && bStart < aEnd
}
