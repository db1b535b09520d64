package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWeeklyAvailability(t *testing.T) {
	w := DefaultWeeklyAvailability()
	for _, d := range OrderedWeekdays {
		ds := w.Day(d)
		assert.Equal(t, []Interval{DefaultSlot}, ds.Intervals, "%s default slot", d)
		assert.Equal(t, d != time.Saturday && d != time.Sunday, ds.IsAvailable, "%s availability", d)
	}
	assert.Zero(t, w.TimeGap)
	assert.Empty(t, w.Validate())
}

func TestWeeklyAvailabilityJSON(t *testing.T) {
	t.Run("Accepts Capitalized And Short Day Names", func(t *testing.T) {
		var w WeeklyAvailability
		body := `{
			"Monday": {"isAvailable": true, "slots": [{"startTime": "9:00 AM", "endTime": "12:00 PM"}]},
			"tue": {"slots": [{"startTime": "13:00", "endTime": "15:00"}]},
			"SATURDAY": {"isAvailable": true, "slots": [{"startTime": "10:00", "endTime": "11:00"}]},
			"timeGap": 15
		}`
		require.NoError(t, json.Unmarshal([]byte(body), &w))

		assert.Equal(t, []Interval{mustInterval(t, "09:00", "12:00")}, w.Day(time.Monday).Intervals)
		assert.True(t, w.Day(time.Tuesday).IsAvailable, "slots without a flag mean available")
		assert.True(t, w.Day(time.Saturday).IsAvailable)
		assert.Equal(t, DefaultDaySchedule(time.Wednesday), w.Day(time.Wednesday), "absent days get defaults")
		assert.False(t, w.Day(time.Sunday).IsAvailable)
		assert.Equal(t, 15, w.TimeGap)
	})

	t.Run("Rejects Unknown And Duplicate Days", func(t *testing.T) {
		var w WeeklyAvailability
		err := json.Unmarshal([]byte(`{"funday": {"slots": []}}`), &w)
		assert.ErrorIs(t, err, ErrUnknownWeekday)

		err = json.Unmarshal([]byte(`{"monday": {"slots": []}, "Monday": {"slots": []}}`), &w)
		assert.ErrorIs(t, err, ErrUnknownWeekday)
	})

	t.Run("Round Trips Through Lowercase Keys", func(t *testing.T) {
		w, err := DefaultWeeklyAvailability().SetTimeGap(30)
		require.NoError(t, err)
		b, err := json.Marshal(w)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(b, &raw))
		assert.Contains(t, raw, "monday")
		assert.Contains(t, raw, "sunday")
		assert.EqualValues(t, 30, raw["timeGap"])

		var back WeeklyAvailability
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, w, back)
	})
}

func TestSlotEditor(t *testing.T) {
	base := DefaultWeeklyAvailability()

	t.Run("Add Keeps Intervals Sorted", func(t *testing.T) {
		ds := DaySchedule{IsAvailable: true, Intervals: []Interval{mustInterval(t, "13:00", "14:00")}}
		ds, err := ds.AddInterval(mustInterval(t, "09:00", "10:00"))
		require.NoError(t, err)
		ds, err = ds.AddInterval(mustInterval(t, "10:00", "11:00"))
		require.NoError(t, err, "touching endpoints are allowed")
		assert.Equal(t, []Interval{
			mustInterval(t, "09:00", "10:00"),
			mustInterval(t, "10:00", "11:00"),
			mustInterval(t, "13:00", "14:00"),
		}, ds.Intervals)
	})

	t.Run("Add Overlap Always Fails And Never Merges", func(t *testing.T) {
		before := base.Day(time.Monday)
		w, err := base.AddInterval(time.Monday, mustInterval(t, "16:00", "18:00"))
		require.Error(t, err)

		var overlap *OverlapError
		require.True(t, errors.As(err, &overlap))
		assert.Equal(t, DefaultSlot, overlap.Existing)
		assert.ErrorIs(t, err, ErrOverlap)
		assert.Equal(t, before, w.Day(time.Monday), "failed add leaves the day untouched")

		_, err = base.AddInterval(time.Monday, DefaultSlot)
		assert.ErrorIs(t, err, ErrOverlap, "adding an identical interval is still an overlap")
	})

	t.Run("Add Does Not Mutate Receiver", func(t *testing.T) {
		w, err := base.AddInterval(time.Monday, mustInterval(t, "18:00", "19:00"))
		require.NoError(t, err)
		assert.Len(t, w.Day(time.Monday).Intervals, 2)
		assert.Len(t, base.Day(time.Monday).Intervals, 1)
	})

	t.Run("Disabled Day Rejects Slot Edits", func(t *testing.T) {
		_, err := base.AddInterval(time.Saturday, mustInterval(t, "16:40", "18:20"))
		assert.ErrorIs(t, err, ErrDayUnavailable)
		var overlap *OverlapError
		assert.False(t, errors.As(err, &overlap), "hidden slots never surface as overlaps")

		_, err = base.UpdateInterval(time.Saturday, 0, mustInterval(t, "10:00", "11:00"))
		assert.ErrorIs(t, err, ErrDayUnavailable)
		_, err = base.RemoveInterval(time.Saturday, 0)
		assert.ErrorIs(t, err, ErrDayUnavailable)

		w, err := base.SetDayAvailable(time.Saturday, true).AddInterval(time.Saturday, mustInterval(t, "17:00", "18:20"))
		require.NoError(t, err)
		assert.Equal(t, []Interval{DefaultSlot, mustInterval(t, "17:00", "18:20")}, w.Day(time.Saturday).Intervals)
	})

	t.Run("Add Rejects Invalid Range", func(t *testing.T) {
		_, err := base.AddInterval(time.Monday, Interval{Start: MustTimeValue(18, 0), End: MustTimeValue(17, 0)})
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("Update Ignores The Slot Being Replaced", func(t *testing.T) {
		w, err := base.AddInterval(time.Monday, mustInterval(t, "18:00", "19:00"))
		require.NoError(t, err)

		w, err = w.UpdateInterval(time.Monday, 0, mustInterval(t, "08:00", "16:00"))
		require.NoError(t, err)
		assert.Equal(t, []Interval{mustInterval(t, "08:00", "16:00"), mustInterval(t, "18:00", "19:00")}, w.Day(time.Monday).Intervals)

		_, err = w.UpdateInterval(time.Monday, 0, mustInterval(t, "08:00", "18:30"))
		assert.ErrorIs(t, err, ErrOverlap)

		_, err = w.UpdateInterval(time.Monday, 5, DefaultSlot)
		assert.ErrorIs(t, err, ErrSlotIndexOutOfRange)
	})

	t.Run("Remove Never Drops The Last Slot", func(t *testing.T) {
		_, err := base.RemoveInterval(time.Monday, 0)
		assert.ErrorIs(t, err, ErrLastSlot)

		w, err := base.AddInterval(time.Monday, mustInterval(t, "18:00", "19:00"))
		require.NoError(t, err)
		w, err = w.RemoveInterval(time.Monday, 0)
		require.NoError(t, err)
		assert.Equal(t, []Interval{mustInterval(t, "18:00", "19:00")}, w.Day(time.Monday).Intervals)

		_, err = w.RemoveInterval(time.Monday, -1)
		assert.ErrorIs(t, err, ErrSlotIndexOutOfRange)
	})

	t.Run("Re Enabling A Day Resets To Default Slot", func(t *testing.T) {
		w, err := base.UpdateInterval(time.Monday, 0, mustInterval(t, "06:00", "07:00"))
		require.NoError(t, err)

		w = w.SetDayAvailable(time.Monday, false)
		assert.False(t, w.Day(time.Monday).IsAvailable)

		w = w.SetDayAvailable(time.Monday, true)
		assert.True(t, w.Day(time.Monday).IsAvailable)
		assert.Equal(t, []Interval{DefaultSlot}, w.Day(time.Monday).Intervals)
	})

	t.Run("Copy Day Replaces Target Wholesale", func(t *testing.T) {
		w, err := base.AddInterval(time.Monday, mustInterval(t, "18:00", "19:00"))
		require.NoError(t, err)

		copied := w.CopyDay(time.Monday, time.Saturday)
		assert.Equal(t, w.Day(time.Monday), copied.Day(time.Saturday))
		assert.True(t, copied.Day(time.Saturday).IsAvailable)

		assert.Equal(t, w, w.CopyDay(time.Monday, time.Monday), "copy onto itself is a no-op")

		all := w.CopyDayTo(time.Monday, time.Tuesday, time.Monday, time.Sunday)
		assert.Equal(t, w.Day(time.Monday), all.Day(time.Tuesday))
		assert.Equal(t, w.Day(time.Monday), all.Day(time.Sunday))
		assert.Equal(t, w.Day(time.Monday), all.Day(time.Monday))
	})

	t.Run("Time Gap Bounds", func(t *testing.T) {
		w, err := base.SetTimeGap(120)
		require.NoError(t, err)
		assert.Equal(t, 120, w.TimeGap)

		_, err = base.SetTimeGap(121)
		assert.ErrorIs(t, err, ErrInvalidTimeGap)
		_, err = base.SetTimeGap(-5)
		assert.ErrorIs(t, err, ErrInvalidTimeGap)
	})
}

func TestValidate(t *testing.T) {
	t.Run("Collects Every Violation Across Days", func(t *testing.T) {
		w := DefaultWeeklyAvailability()
		w.TimeGap = 200
		w.Days[time.Monday].Intervals = []Interval{
			{Start: MustTimeValue(12, 0), End: MustTimeValue(10, 0)},
		}
		w.Days[time.Wednesday].Intervals = []Interval{
			mustInterval(t, "09:00", "11:00"),
			mustInterval(t, "10:00", "12:00"),
		}
		w.Days[time.Friday].Intervals = nil
		w.Days[time.Sunday].Intervals = []Interval{{Start: MustTimeValue(12, 0), End: MustTimeValue(10, 0)}}

		errs := w.Validate()
		require.Len(t, errs, 4)
		assert.Equal(t, KindInvalidTimeGap, errs[0].Kind)
		assert.Equal(t, ValidationError{Day: "monday", Kind: KindEndBeforeStart, Slot: 0, Message: errs[1].Message}, errs[1])
		assert.Equal(t, "wednesday", errs[2].Day)
		assert.Equal(t, KindOverlappingSlots, errs[2].Kind)
		assert.Equal(t, "friday", errs[3].Day)
		assert.Equal(t, KindNoSlots, errs[3].Kind)

		assert.Error(t, errs.Err())
		assert.Contains(t, errs.Error(), "Monday")
		assert.Contains(t, errs.Error(), "Wednesday")
	})

	t.Run("Touching Slots Are Valid", func(t *testing.T) {
		w := DefaultWeeklyAvailability()
		w.Days[time.Tuesday].Intervals = []Interval{
			mustInterval(t, "09:00", "10:00"),
			mustInterval(t, "10:00", "11:00"),
		}
		assert.NoError(t, w.Validate().Err())
	})
}
