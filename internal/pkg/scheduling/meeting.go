package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// MeetingStatus is the stored status of a meeting or of one participant's response.
type MeetingStatus string

const (
	StatusPending   MeetingStatus = "pending"
	StatusAccepted  MeetingStatus = "accepted"
	StatusRejected  MeetingStatus = "rejected"
	StatusCancelled MeetingStatus = "cancelled"
)

// ParseStatus maps a stored status string onto a MeetingStatus. Unknown values
// read as pending.
func ParseStatus(s string) MeetingStatus {
	switch st := MeetingStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusAccepted, StatusRejected, StatusCancelled:
		return st
	case "canceled":
		return StatusCancelled
	default:
		return StatusPending
	}
}

// Closed reports whether no further responses are possible.
func (s MeetingStatus) Closed() bool {
	return s == StatusCancelled || s == StatusRejected
}

type Participant struct {
	Identity string        `json:"identity"`
	Status   MeetingStatus `json:"status"`
}

// MeetingRecord is a booked meeting as the engine sees it. A zero Date or a zero
// Interval means the stored value could not be read.
type MeetingRecord struct {
	ID           string
	HostID       string
	Title        string
	Participants []Participant
	Date         time.Time
	Interval     Interval
	Status       MeetingStatus
}

// IsHost reports whether viewer hosts the meeting. A missing host never matches.
func (m MeetingRecord) IsHost(viewer string) bool {
	return m.HostID != "" && viewer != "" && m.HostID == viewer
}

// Participant returns the index of viewer in Participants.
func (m MeetingRecord) Participant(viewer string) (int, bool) {
	if viewer == "" {
		return -1, false
	}
	for i, p := range m.Participants {
		if p.Identity == viewer {
			return i, true
		}
	}
	return -1, false
}

// HasPendingParticipants reports whether any invitee has not responded yet.
func (m MeetingRecord) HasPendingParticipants() bool {
	for _, p := range m.Participants {
		if p.Status == StatusPending {
			return true
		}
	}
	return false
}

// Involves reports whether viewer is the host or an invitee.
func (m MeetingRecord) Involves(viewer string) bool {
	_, ok := m.Participant(viewer)
	return ok || m.IsHost(viewer)
}

func (m MeetingRecord) timingKnown() bool {
	return !m.Date.IsZero() && !m.Interval.Empty()
}

// EndsAt returns the instant the meeting ends in loc. Records whose end is
// before their start finish on the next day.
func (m MeetingRecord) EndsAt(loc *time.Location) (time.Time, bool) {
	if !m.timingKnown() {
		return time.Time{}, false
	}
	end := At(m.Date, m.Interval.End, loc)
	if m.Interval.End < m.Interval.Start {
		end = end.AddDate(0, 0, 1)
	}
	return end, true
}

// StartsAt returns the instant the meeting starts in loc.
func (m MeetingRecord) StartsAt(loc *time.Location) (time.Time, bool) {
	if !m.timingKnown() {
		return time.Time{}, false
	}
	return At(m.Date, m.Interval.Start, loc), true
}

// Clone returns a copy that shares no slices with m.
func (m MeetingRecord) Clone() MeetingRecord {
	out := m
	out.Participants = append([]Participant(nil), m.Participants...)
	return out
}

// Raw renders the record in its boundary shape.
func (m MeetingRecord) Raw() RawMeeting {
	raw := RawMeeting{
		ID:     m.ID,
		HostID: m.HostID,
		Title:  m.Title,
		Status: string(m.Status),
	}
	if !m.Date.IsZero() {
		raw.Date = FormatDate(m.Date)
	}
	if m.Interval != (Interval{}) {
		raw.StartTime = m.Interval.Start.String()
		raw.EndTime = m.Interval.End.String()
	}
	for _, p := range m.Participants {
		raw.Participants = append(raw.Participants, RawParticipant{Identity: p.Identity, Status: string(p.Status)})
	}
	return raw
}

// FlexString accepts either a JSON string or a JSON number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*f = FlexString(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

type RawParticipant struct {
	Identity string `json:"identity"`
	Status   string `json:"status,omitempty"`
}

// RawMeeting is a meeting as it arrives from callers or legacy storage: every
// field is a string in one of several accepted spellings.
type RawMeeting struct {
	ID           string           `json:"id,omitempty"`
	HostID       string           `json:"hostId,omitempty"`
	Title        string           `json:"title,omitempty"`
	Date         string           `json:"date"`
	StartTime    string           `json:"startTime"`
	EndTime      string           `json:"endTime,omitempty"`
	Duration     FlexString       `json:"duration,omitempty"`
	Status       string           `json:"status,omitempty"`
	Participants []RawParticipant `json:"participants,omitempty"`
}

// NormalizeMeeting reads stored or displayed meeting data tolerantly. Fields that
// cannot be parsed are left zero instead of failing the read, and a missing,
// unreadable or zero-length end time falls back to start plus the duration (60 minutes when the
// duration is unreadable too).
func NormalizeMeeting(raw RawMeeting) MeetingRecord {
	rec := MeetingRecord{
		ID:     raw.ID,
		HostID: raw.HostID,
		Title:  raw.Title,
		Status: ParseStatus(raw.Status),
	}
	for _, p := range raw.Participants {
		rec.Participants = append(rec.Participants, Participant{Identity: p.Identity, Status: ParseStatus(p.Status)})
	}
	if d, err := ParseDate(raw.Date); err == nil {
		rec.Date = d
	}
	start, err := ParseTime(raw.StartTime)
	if err != nil {
		return rec
	}
	end, err := ParseTime(raw.EndTime)
	if err != nil || end == start {
		end = EndFromStart(start, DurationOrDefault(string(raw.Duration)))
	}
	rec.Interval = Interval{Start: start, End: end}
	return rec
}

// NormalizeBooking reads user-submitted booking data strictly. Either an end time
// or a duration is required, and the result must end on the same day it starts.
func NormalizeBooking(raw RawMeeting) (BookingRequest, error) {
	date, err := ParseDate(raw.Date)
	if err != nil {
		return BookingRequest{}, err
	}
	start, err := ParseTime(raw.StartTime)
	if err != nil {
		return BookingRequest{}, fmt.Errorf("start time: %w", err)
	}

	req := BookingRequest{Date: date, DurationSource: string(raw.Duration)}
	switch {
	case strings.TrimSpace(raw.EndTime) != "":
		end, err := ParseTime(raw.EndTime)
		if err != nil {
			return BookingRequest{}, fmt.Errorf("end time: %w", err)
		}
		req.Interval, err = NewInterval(start, end)
		if err != nil {
			return BookingRequest{}, err
		}
	case strings.TrimSpace(string(raw.Duration)) != "":
		minutes, err := ToMinutes(string(raw.Duration))
		if err != nil {
			return BookingRequest{}, err
		}
		if WrapsMidnight(start, minutes) {
			return BookingRequest{}, fmt.Errorf("%w: booking starting %s for %d minutes does not end before midnight", ErrInvalidRange, start, minutes)
		}
		end := EndFromStart(start, minutes)
		req.Interval = Interval{Start: start, End: end}
	default:
		return BookingRequest{}, fmt.Errorf("%w: end time or duration is required", ErrInvalidDuration)
	}
	return req, nil
}
