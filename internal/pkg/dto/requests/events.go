package requests

import "time"

// MeetingEvent is the message published on the meeting events queue.
type MeetingEvent struct {
	EventID      string    `json:"eventId"`
	Type         string    `json:"type"`
	MeetingID    string    `json:"meetingId"`
	HostID       string    `json:"hostId"`
	ActorID      string    `json:"actorId,omitempty"`
	Status       string    `json:"status"`
	Date         string    `json:"date,omitempty"`
	StartTime    string    `json:"startTime,omitempty"`
	EndTime      string    `json:"endTime,omitempty"`
	Participants []string  `json:"participants,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}
