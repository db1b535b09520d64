package contracts

import (
	"context"
	"meetslot-service/internal/app/models"
	"meetslot-service/internal/pkg/dto/requests"
	"meetslot-service/internal/pkg/dto/responses"
	"time"
)

type MeetingUsecase interface {
	CreateMeeting(ctx context.Context, hostID string, request *requests.CreateMeeting) (*responses.CreatedMeeting, error)
	ListMeetings(ctx context.Context, viewerID string, now time.Time) (responses.MeetingBuckets, error)
	AcceptMeeting(ctx context.Context, meetingID, viewerID string) (*responses.Meeting, error)
	RejectMeeting(ctx context.Context, meetingID, viewerID string) (*responses.Meeting, error)
	CancelMeeting(ctx context.Context, meetingID, viewerID string) (*responses.Meeting, error)
	ExportCalendar(ctx context.Context, viewerID string, now time.Time) (*responses.CalendarExport, error)
}

type MeetingRepository interface {
	Insert(ctx context.Context, meeting *models.Meeting) error
	FindByID(ctx context.Context, meetingID string) (*models.Meeting, error)
	// Update replaces the stored meeting only when its version still matches and
	// reports whether it did.
	Update(ctx context.Context, meeting *models.Meeting) (bool, error)
	FindByViewer(ctx context.Context, viewerID string) ([]models.Meeting, error)
	FindActiveOnDate(ctx context.Context, userID, date string) ([]models.Meeting, error)
	FindEndedBetween(ctx context.Context, from, to time.Time) ([]models.Meeting, error)
}
