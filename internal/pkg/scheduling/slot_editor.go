package scheduling

import (
	"fmt"
	"slices"
	"time"
)

// The editing operations below never mutate their receiver; they return a new
// value so callers can validate before persisting. Slots of a disabled day are
// hidden and cannot be edited.

// AddInterval inserts iv keeping intervals sorted by start. It fails with an
// *OverlapError when iv overlaps any existing interval; touching endpoints are allowed.
func (ds DaySchedule) AddInterval(iv Interval) (DaySchedule, error) {
	if !ds.IsAvailable {
		return ds, ErrDayUnavailable
	}
	if !iv.Valid() {
		return ds, fmt.Errorf("%w: %s", ErrInvalidRange, iv)
	}
	for _, existing := range ds.Intervals {
		if existing.Overlaps(iv) {
			return ds, &OverlapError{Existing: existing, Requested: iv}
		}
	}
	out := ds.Clone()
	out.Intervals = append(out.Intervals, iv)
	SortIntervals(out.Intervals)
	return out, nil
}

// UpdateInterval replaces the interval at index, checking the replacement only
// against the other intervals of the day.
func (ds DaySchedule) UpdateInterval(index int, iv Interval) (DaySchedule, error) {
	if !ds.IsAvailable {
		return ds, ErrDayUnavailable
	}
	if index < 0 || index >= len(ds.Intervals) {
		return ds, fmt.Errorf("%w: %d", ErrSlotIndexOutOfRange, index)
	}
	rest := DaySchedule{IsAvailable: ds.IsAvailable, Intervals: slices.Delete(slices.Clone(ds.Intervals), index, index+1)}
	return rest.AddInterval(iv)
}

// RemoveInterval drops the interval at index. The last interval of a day can
// never be removed; disabling the day is the only way to clear it.
func (ds DaySchedule) RemoveInterval(index int) (DaySchedule, error) {
	if !ds.IsAvailable {
		return ds, ErrDayUnavailable
	}
	if index < 0 || index >= len(ds.Intervals) {
		return ds, fmt.Errorf("%w: %d", ErrSlotIndexOutOfRange, index)
	}
	if len(ds.Intervals) == 1 {
		return ds, ErrLastSlot
	}
	out := ds.Clone()
	out.Intervals = slices.Delete(out.Intervals, index, index+1)
	return out, nil
}

// SetAvailable toggles the day. Re-enabling a disabled day resets it to the
// single DefaultSlot instead of reviving whatever intervals were left behind.
func (ds DaySchedule) SetAvailable(available bool) DaySchedule {
	if ds.IsAvailable == available {
		return ds.Clone()
	}
	out := ds.Clone()
	out.IsAvailable = available
	if available {
		out.Intervals = []Interval{DefaultSlot}
	}
	return out
}

// AddInterval applies DaySchedule.AddInterval to day.
func (w WeeklyAvailability) AddInterval(day time.Weekday, iv Interval) (WeeklyAvailability, error) {
	ds, err := w.Days[day].AddInterval(iv)
	if err != nil {
		return w, fmt.Errorf("%s: %w", WeekdayKey(day), err)
	}
	return w.withDay(day, ds), nil
}

// UpdateInterval applies DaySchedule.UpdateInterval to day.
func (w WeeklyAvailability) UpdateInterval(day time.Weekday, index int, iv Interval) (WeeklyAvailability, error) {
	ds, err := w.Days[day].UpdateInterval(index, iv)
	if err != nil {
		return w, fmt.Errorf("%s: %w", WeekdayKey(day), err)
	}
	return w.withDay(day, ds), nil
}

// RemoveInterval applies DaySchedule.RemoveInterval to day.
func (w WeeklyAvailability) RemoveInterval(day time.Weekday, index int) (WeeklyAvailability, error) {
	ds, err := w.Days[day].RemoveInterval(index)
	if err != nil {
		return w, fmt.Errorf("%s: %w", WeekdayKey(day), err)
	}
	return w.withDay(day, ds), nil
}

// SetDayAvailable applies DaySchedule.SetAvailable to day.
func (w WeeklyAvailability) SetDayAvailable(day time.Weekday, available bool) WeeklyAvailability {
	return w.withDay(day, w.Days[day].SetAvailable(available))
}

// CopyDay replaces target's flag and intervals with source's. Copying a day
// onto itself is a no-op.
func (w WeeklyAvailability) CopyDay(source, target time.Weekday) WeeklyAvailability {
	if source == target {
		return w
	}
	return w.withDay(target, w.Days[source].Clone())
}

// CopyDayTo copies source onto every target, skipping source itself.
func (w WeeklyAvailability) CopyDayTo(source time.Weekday, targets ...time.Weekday) WeeklyAvailability {
	out := w
	for _, t := range targets {
		out = out.CopyDay(source, t)
	}
	return out
}

// SetTimeGap sets the minimum buffer between bookings.
func (w WeeklyAvailability) SetTimeGap(minutes int) (WeeklyAvailability, error) {
	if minutes < 0 || minutes > MaxTimeGap {
		return w, fmt.Errorf("%w: %d (allowed 0-%d)", ErrInvalidTimeGap, minutes, MaxTimeGap)
	}
	out := w.Clone()
	out.TimeGap = minutes
	return out, nil
}
