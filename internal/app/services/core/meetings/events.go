package meetings

import (
	"meetslot-service/internal/pkg/dto/requests"
	"meetslot-service/internal/pkg/scheduling"
	"time"

	"github.com/google/uuid"
)

func newMeetingEvent(eventType string, m scheduling.MeetingRecord, actorID string, now time.Time) *requests.MeetingEvent {
	raw := m.Raw()
	event := &requests.MeetingEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		MeetingID:  m.ID,
		HostID:     m.HostID,
		ActorID:    actorID,
		Status:     string(m.Status),
		Date:       raw.Date,
		StartTime:  raw.StartTime,
		EndTime:    raw.EndTime,
		OccurredAt: now.UTC(),
	}
	for _, p := range m.Participants {
		event.Participants = append(event.Participants, p.Identity)
	}
	return event
}
