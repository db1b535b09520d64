package meetings

import (
	"context"
	"meetslot-service/internal/app/contracts"
	"meetslot-service/internal/pkg/scheduling"
	"time"
)

type bookingSource struct {
	MeetingRepository contracts.MeetingRepository
}

// NewBookingSource exposes the meetings a user is committed to as plain
// intervals for availability checks.
func NewBookingSource(meetingRepository contracts.MeetingRepository) contracts.BookingSource {
	return &bookingSource{MeetingRepository: meetingRepository}
}

// FindBookedIntervals skips meetings the user declined and meetings whose
// timing cannot be read.
func (s *bookingSource) FindBookedIntervals(ctx context.Context, userID string, date time.Time) ([]scheduling.Interval, error) {
	docs, err := s.MeetingRepository.FindActiveOnDate(ctx, userID, scheduling.FormatDate(date))
	if err != nil {
		return nil, err
	}

	intervals := make([]scheduling.Interval, 0, len(docs))
	for i := range docs {
		rec := docs[i].Record()
		if rec.Interval.Empty() {
			continue
		}
		if idx, ok := rec.Participant(userID); ok && !rec.IsHost(userID) && rec.Participants[idx].Status == scheduling.StatusRejected {
			continue
		}
		intervals = append(intervals, rec.Interval)
	}
	scheduling.SortIntervals(intervals)
	return intervals, nil
}
