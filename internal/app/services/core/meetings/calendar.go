package meetings

import (
	"fmt"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/scheduling"
	"time"

	ics "github.com/arran4/golang-ical"
)

var participationStatuses = map[scheduling.MeetingStatus]ics.ParticipationStatus{
	scheduling.StatusPending:   ics.ParticipationStatusNeedsAction,
	scheduling.StatusAccepted:  ics.ParticipationStatusAccepted,
	scheduling.StatusRejected:  ics.ParticipationStatusDeclined,
	scheduling.StatusCancelled: ics.ParticipationStatusDeclined,
}

// BuildCalendar renders meetings as an iCalendar document. Meetings whose
// timing is unknown are left out; the second result counts the events written.
func BuildCalendar(meetings []scheduling.MeetingRecord, loc *time.Location, now time.Time) (string, int) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(constvars.CalendarProductID)

	written := 0
	for _, m := range meetings {
		start, okStart := m.StartsAt(loc)
		end, okEnd := m.EndsAt(loc)
		if !okStart || !okEnd {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s@meetslot", m.ID))
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(m.Title)
		event.SetProperty(ics.ComponentPropertyStatus, calendarStatus(m.Status))
		if m.HostID != "" {
			event.SetOrganizer(m.HostID)
		}
		for _, p := range m.Participants {
			event.AddAttendee(p.Identity, participationStatuses[p.Status])
		}
		written++
	}
	return cal.Serialize(), written
}

func calendarStatus(status scheduling.MeetingStatus) string {
	switch status {
	case scheduling.StatusAccepted:
		return "CONFIRMED"
	case scheduling.StatusCancelled, scheduling.StatusRejected:
		return "CANCELLED"
	default:
		return "TENTATIVE"
	}
}
