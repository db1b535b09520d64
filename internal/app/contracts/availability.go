package contracts

import (
	"context"
	"meetslot-service/internal/app/models"
	"meetslot-service/internal/pkg/dto/responses"
	"meetslot-service/internal/pkg/scheduling"
	"time"
)

type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context, userID string) (scheduling.WeeklyAvailability, error)
	SaveAvailability(ctx context.Context, userID string, availability scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error)
	AddSlot(ctx context.Context, userID string, day time.Weekday, slot scheduling.Interval) (scheduling.WeeklyAvailability, error)
	UpdateSlot(ctx context.Context, userID string, day time.Weekday, index int, slot scheduling.Interval) (scheduling.WeeklyAvailability, error)
	RemoveSlot(ctx context.Context, userID string, day time.Weekday, index int) (scheduling.WeeklyAvailability, error)
	CopyDay(ctx context.Context, userID string, source time.Weekday, targets ...time.Weekday) (scheduling.WeeklyAvailability, error)
	SetDayAvailable(ctx context.Context, userID string, day time.Weekday, available bool) (scheduling.WeeklyAvailability, error)
	SetTimeGap(ctx context.Context, userID string, minutes int) (scheduling.WeeklyAvailability, error)
	CheckBooking(ctx context.Context, hostID string, request scheduling.BookingRequest) (scheduling.Decision, error)
	CheckInvitees(ctx context.Context, identities []string, request scheduling.BookingRequest) []responses.InviteeCheck
	ListOpenings(ctx context.Context, userID string, from, to time.Time) ([]responses.Opening, error)
}

type AvailabilityRepository interface {
	FindByUserID(ctx context.Context, userID string) (*models.Availability, error)
	Upsert(ctx context.Context, availability *models.Availability) error
}

// BookingSource lists the intervals a user is already committed to on a date.
type BookingSource interface {
	FindBookedIntervals(ctx context.Context, userID string, date time.Time) ([]scheduling.Interval, error)
}
