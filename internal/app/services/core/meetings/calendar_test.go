package meetings

import (
	"meetslot-service/internal/pkg/scheduling"
	"strings"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalendar(t *testing.T) {
	d, err := scheduling.ParseDate("2026-03-10")
	require.NoError(t, err)
	iv, err := scheduling.ParseInterval("10:00", "11:30")
	require.NoError(t, err)

	t.Run("Renders Timed Meetings", func(t *testing.T) {
		meetings := []scheduling.MeetingRecord{
			{
				ID:       "m-1",
				HostID:   "host-1",
				Title:    "Design review",
				Date:     d,
				Interval: iv,
				Status:   scheduling.StatusAccepted,
				Participants: []scheduling.Participant{
					{Identity: "bob", Status: scheduling.StatusAccepted},
				},
			},
			{ID: "m-2", HostID: "host-1", Title: "Unknown timing", Status: scheduling.StatusPending},
		}

		body, written := BuildCalendar(meetings, time.UTC, fixedNow)

		assert.Equal(t, 1, written)
		cal, err := ics.ParseCalendar(strings.NewReader(body))
		require.NoError(t, err)
		events := cal.Events()
		require.Len(t, events, 1)
		assert.Equal(t, "Design review", events[0].GetProperty(ics.ComponentPropertySummary).Value)
		assert.Equal(t, "CONFIRMED", events[0].GetProperty(ics.ComponentPropertyStatus).Value)
		assert.Contains(t, body, "DTSTART:20260310T100000Z")
		assert.Contains(t, body, "DTEND:20260310T113000Z")
	})

	t.Run("Empty Input Is A Valid Calendar", func(t *testing.T) {
		body, written := BuildCalendar(nil, time.UTC, fixedNow)

		assert.Zero(t, written)
		assert.Contains(t, body, "BEGIN:VCALENDAR")
		assert.NotContains(t, body, "BEGIN:VEVENT")
	})
}
