package constvars

// Meeting lifecycle event types published to the meeting events queue.
const (
	EventMeetingCreated   = "meeting.created"
	EventMeetingAccepted  = "meeting.accepted"
	EventMeetingRejected  = "meeting.rejected"
	EventMeetingCancelled = "meeting.cancelled"
	EventMeetingEnded     = "meeting.ended"
)
