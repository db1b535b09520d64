package scheduling

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	t.Run("Rejects Zero Length And Reversed", func(t *testing.T) {
		_, err := NewInterval(MustTimeValue(10, 0), MustTimeValue(10, 0))
		assert.ErrorIs(t, err, ErrInvalidRange)

		_, err = NewInterval(MustTimeValue(23, 0), MustTimeValue(1, 0))
		assert.ErrorIs(t, err, ErrInvalidRange, "past-midnight slots are not single-day intervals")
	})

	t.Run("Parses Ranges", func(t *testing.T) {
		iv, err := ParseIntervalRange("9:00 AM - 10:30 AM")
		require.NoError(t, err)
		assert.Equal(t, "09:00-10:30", iv.String())

		_, err = ParseIntervalRange("09:00")
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	a := mustInterval(t, "09:00", "10:00")
	b := mustInterval(t, "10:00", "11:00")
	c := mustInterval(t, "09:30", "10:30")

	t.Run("Self Overlap", func(t *testing.T) {
		assert.True(t, a.Overlaps(a))
		assert.True(t, b.Overlaps(b))
	})

	t.Run("Touching Endpoints Do Not Overlap", func(t *testing.T) {
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))
	})

	t.Run("Partial Overlap Is Symmetric", func(t *testing.T) {
		assert.True(t, a.Overlaps(c))
		assert.True(t, c.Overlaps(a))
		assert.True(t, b.Overlaps(c))
	})

	t.Run("IsWithin Is Half Open", func(t *testing.T) {
		assert.True(t, a.IsWithin(MustTimeValue(9, 0)))
		assert.True(t, a.IsWithin(MustTimeValue(9, 59)))
		assert.False(t, a.IsWithin(MustTimeValue(10, 0)))
	})

	t.Run("Contains Includes Endpoints", func(t *testing.T) {
		day := mustInterval(t, "09:00", "17:00")
		assert.True(t, day.Contains(day))
		assert.True(t, day.Contains(c))
		assert.False(t, day.Contains(mustInterval(t, "16:30", "17:30")))
	})
}

func TestIntervalJSON(t *testing.T) {
	t.Run("Boundary Shape", func(t *testing.T) {
		b, err := json.Marshal(mustInterval(t, "09:00", "10:30"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"startTime":"09:00","endTime":"10:30"}`, string(b))
	})

	t.Run("Missing Endpoint Fails", func(t *testing.T) {
		var iv Interval
		err := json.Unmarshal([]byte(`{"startTime":"09:00"}`), &iv)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})

	t.Run("Reversed Range Decodes For Later Validation", func(t *testing.T) {
		var iv Interval
		require.NoError(t, json.Unmarshal([]byte(`{"startTime":"5:00 PM","endTime":"9:00 AM"}`), &iv))
		assert.False(t, iv.Valid())
	})
}
