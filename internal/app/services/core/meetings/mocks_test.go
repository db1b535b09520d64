package meetings

import (
	"context"
	"meetslot-service/internal/app/models"
	"meetslot-service/internal/pkg/dto/requests"
	"meetslot-service/internal/pkg/dto/responses"
	"meetslot-service/internal/pkg/scheduling"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockMeetingRepository struct {
	mock.Mock
}

func (m *MockMeetingRepository) Insert(ctx context.Context, meeting *models.Meeting) error {
	args := m.Called(ctx, meeting)
	return args.Error(0)
}

func (m *MockMeetingRepository) FindByID(ctx context.Context, meetingID string) (*models.Meeting, error) {
	args := m.Called(ctx, meetingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) Update(ctx context.Context, meeting *models.Meeting) (bool, error) {
	args := m.Called(ctx, meeting)
	return args.Bool(0), args.Error(1)
}

func (m *MockMeetingRepository) FindByViewer(ctx context.Context, viewerID string) ([]models.Meeting, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) FindActiveOnDate(ctx context.Context, userID, date string) ([]models.Meeting, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meeting), args.Error(1)
}

func (m *MockMeetingRepository) FindEndedBetween(ctx context.Context, from, to time.Time) ([]models.Meeting, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Meeting), args.Error(1)
}

type MockAvailabilityUsecase struct {
	mock.Mock
}

func (m *MockAvailabilityUsecase) weekly(args mock.Arguments) (scheduling.WeeklyAvailability, error) {
	if args.Get(0) == nil {
		return scheduling.WeeklyAvailability{}, args.Error(1)
	}
	return args.Get(0).(scheduling.WeeklyAvailability), args.Error(1)
}

func (m *MockAvailabilityUsecase) GetAvailability(ctx context.Context, userID string) (scheduling.WeeklyAvailability, error) {
	return m.weekly(m.Called(ctx, userID))
}

func (m *MockAvailabilityUsecase) SaveAvailability(ctx context.Context, userID string, availability scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error) {
	return m.weekly(m.Called(ctx, userID, availability))
}

func (m *MockAvailabilityUsecase) AddSlot(ctx context.Context, userID string, day time.Weekday, slot scheduling.Interval) (scheduling.WeeklyAvailability, error) {
	return m.weekly(m.Called(ctx, userID, day, slot))
}

func (m *MockAvailabilityUsecase) UpdateSlot(ctx context.Context, userID string, day time.Weekday, index int, slot scheduling.Interval) (scheduling.WeeklyAvailability, error) {
	return m.weekly(m.Called(ctx, userID, day, index, slot))
}

func (m *MockAvailabilityUsecase) RemoveSlot(ctx context.Context, userID string, day time.Weekday, index int) (scheduling.WeeklyAvailability, error) {
	return m.weekly(m.Called(ctx, userID, day, index))
}

func (m *MockAvailabilityUsecase) CopyDay(ctx context.Context, userID string, source time.Weekday, targets ...time.Weekday) (scheduling.WeeklyAvailability, error) {
	return m.weekly(m.Called(ctx, userID, source, targets))
}

func (m *MockAvailabilityUsecase) SetDayAvailable(ctx context.Context, userID string, day time.Weekday, available bool) (scheduling.WeeklyAvailability, error) {
	return m.weekly(m.Called(ctx, userID, day, available))
}

func (m *MockAvailabilityUsecase) SetTimeGap(ctx context.Context, userID string, minutes int) (scheduling.WeeklyAvailability, error) {
	return m.weekly(m.Called(ctx, userID, minutes))
}

func (m *MockAvailabilityUsecase) CheckBooking(ctx context.Context, hostID string, request scheduling.BookingRequest) (scheduling.Decision, error) {
	args := m.Called(ctx, hostID, request)
	return args.Get(0).(scheduling.Decision), args.Error(1)
}

func (m *MockAvailabilityUsecase) CheckInvitees(ctx context.Context, identities []string, request scheduling.BookingRequest) []responses.InviteeCheck {
	args := m.Called(ctx, identities, request)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]responses.InviteeCheck)
}

func (m *MockAvailabilityUsecase) ListOpenings(ctx context.Context, userID string, from, to time.Time) ([]responses.Opening, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]responses.Opening), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

func (m *MockLockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	args := m.Called(ctx, key, lockValue, expiration)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *requests.MeetingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) EnsureBucket(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

func (m *MockStorage) PutObject(ctx context.Context, bucketName, objectName, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func (m *MockRedisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) (int64, error) {
	args := m.Called(ctx, key, values)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRedisRepository) IsSetMember(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}
