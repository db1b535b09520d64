package models

import (
	"meetslot-service/internal/pkg/scheduling"
	"time"
)

// Meeting is a booked meeting as stored in mongo. StartsAt and EndsAt are the
// resolved instants used for range queries; Date and the clock times are the
// values the host booked.
type Meeting struct {
	ID           string               `json:"id" bson:"_id"`
	HostID       string               `json:"hostId" bson:"hostId"`
	Title        string               `json:"title" bson:"title"`
	Date         string               `json:"date" bson:"date"`
	StartTime    string               `json:"startTime" bson:"startTime"`
	EndTime      string               `json:"endTime" bson:"endTime"`
	Duration     string               `json:"duration,omitempty" bson:"duration,omitempty"`
	Status       string               `json:"status" bson:"status"`
	Participants []MeetingParticipant `json:"participants" bson:"participants"`
	StartsAt     time.Time            `json:"startsAt" bson:"startsAt"`
	EndsAt       time.Time            `json:"endsAt" bson:"endsAt"`
	Version      int64                `json:"version" bson:"version"`
	TimeModel    `bson:",inline"`
}

type MeetingParticipant struct {
	Identity    string     `json:"identity" bson:"identity"`
	Status      string     `json:"status" bson:"status"`
	RespondedAt *time.Time `json:"respondedAt,omitempty" bson:"respondedAt,omitempty"`
}

// NewMeeting builds the stored form of rec. loc resolves the start and end
// instants.
func NewMeeting(rec scheduling.MeetingRecord, durationSource string, loc *time.Location) *Meeting {
	doc := &Meeting{
		ID:       rec.ID,
		HostID:   rec.HostID,
		Title:    rec.Title,
		Duration: durationSource,
	}
	doc.Apply(rec, time.Time{})
	doc.Date = scheduling.FormatDate(rec.Date)
	doc.StartTime = rec.Interval.Start.String()
	doc.EndTime = rec.Interval.End.String()
	doc.StartsAt, _ = rec.StartsAt(loc)
	doc.EndsAt, _ = rec.EndsAt(loc)
	return doc
}

// Apply copies the statuses of rec onto the document. Participants whose status
// changed are stamped with respondedAt unless at is zero.
func (m *Meeting) Apply(rec scheduling.MeetingRecord, at time.Time) {
	m.Status = string(rec.Status)
	previous := make(map[string]MeetingParticipant, len(m.Participants))
	for _, p := range m.Participants {
		previous[p.Identity] = p
	}

	participants := make([]MeetingParticipant, 0, len(rec.Participants))
	for _, p := range rec.Participants {
		stored := MeetingParticipant{Identity: p.Identity, Status: string(p.Status)}
		if old, ok := previous[p.Identity]; ok {
			stored.RespondedAt = old.RespondedAt
			if old.Status != stored.Status && !at.IsZero() {
				respondedAt := at
				stored.RespondedAt = &respondedAt
			}
		}
		participants = append(participants, stored)
	}
	m.Participants = participants
}

// Record reads the document tolerantly, so a legacy row with odd spellings still
// renders instead of failing the whole listing.
func (m *Meeting) Record() scheduling.MeetingRecord {
	raw := scheduling.RawMeeting{
		ID:        m.ID,
		HostID:    m.HostID,
		Title:     m.Title,
		Date:      m.Date,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Duration:  scheduling.FlexString(m.Duration),
		Status:    m.Status,
	}
	for _, p := range m.Participants {
		raw.Participants = append(raw.Participants, scheduling.RawParticipant{Identity: p.Identity, Status: p.Status})
	}
	return scheduling.NormalizeMeeting(raw)
}

func (m *Meeting) ParticipantIdentities() []string {
	identities := make([]string, 0, len(m.Participants))
	for _, p := range m.Participants {
		identities = append(identities, p.Identity)
	}
	return identities
}
