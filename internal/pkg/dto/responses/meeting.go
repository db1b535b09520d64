package responses

import "meetslot-service/internal/pkg/scheduling"

type Meeting struct {
	ID           string                   `json:"id"`
	HostID       string                   `json:"hostId"`
	Title        string                   `json:"title"`
	Date         string                   `json:"date,omitempty"`
	StartTime    string                   `json:"startTime,omitempty"`
	EndTime      string                   `json:"endTime,omitempty"`
	Status       scheduling.MeetingStatus `json:"status"`
	Participants []scheduling.Participant `json:"participants"`
	Category     scheduling.Category      `json:"category,omitempty"`
}

// NewMeeting renders a record for the viewer. Unknown timing is left blank.
func NewMeeting(m scheduling.MeetingRecord, category scheduling.Category) Meeting {
	meeting := Meeting{
		ID:           m.ID,
		HostID:       m.HostID,
		Title:        m.Title,
		Status:       m.Status,
		Participants: m.Participants,
		Category:     category,
	}
	if meeting.Participants == nil {
		meeting.Participants = []scheduling.Participant{}
	}
	if !m.Date.IsZero() {
		meeting.Date = scheduling.FormatDate(m.Date)
	}
	if m.Interval != (scheduling.Interval{}) {
		meeting.StartTime = m.Interval.Start.String()
		meeting.EndTime = m.Interval.End.String()
	}
	return meeting
}

type CreatedMeeting struct {
	Meeting  Meeting        `json:"meeting"`
	Invitees []InviteeCheck `json:"invitees,omitempty"`
}

type MeetingBuckets map[scheduling.Category][]Meeting

type CalendarExport struct {
	URL        string `json:"url"`
	ObjectName string `json:"objectName"`
	ExpiresAt  string `json:"expiresAt"`
	Events     int    `json:"events"`
}
