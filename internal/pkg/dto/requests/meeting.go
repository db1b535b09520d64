package requests

import "meetslot-service/internal/pkg/scheduling"

// Booking is a proposed booking as typed by a user. Either EndTime or Duration
// must be present.
type Booking struct {
	Date      string                `json:"date" validate:"required,isodate"`
	StartTime string                `json:"startTime" validate:"required,clocktime"`
	EndTime   string                `json:"endTime" validate:"required_without=Duration,omitempty,clocktime"`
	Duration  scheduling.FlexString `json:"duration"`
}

func (b Booking) ToRaw() scheduling.RawMeeting {
	return scheduling.RawMeeting{
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Duration:  b.Duration,
	}
}

type CreateMeeting struct {
	Booking
	Title        string   `json:"title" validate:"required,max=200"`
	Participants []string `json:"participants" validate:"omitempty,max=50,dive,required"`
}

func (c CreateMeeting) ToRaw(hostID string) scheduling.RawMeeting {
	raw := c.Booking.ToRaw()
	raw.HostID = hostID
	raw.Title = c.Title
	for _, identity := range c.Participants {
		raw.Participants = append(raw.Participants, scheduling.RawParticipant{Identity: identity})
	}
	return raw
}
