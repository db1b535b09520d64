package routers

import (
	"bytes"
	"context"
	"meetslot-service/internal/app/config"
	"meetslot-service/internal/app/delivery/http/controllers"
	"meetslot-service/internal/app/delivery/http/middlewares"
	"meetslot-service/internal/app/services/shared/ratelimiter"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/dto/requests"
	"meetslot-service/internal/pkg/dto/responses"
	"meetslot-service/internal/pkg/scheduling"
	"meetslot-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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

type MockMeetingUsecase struct {
	mock.Mock
}

func (m *MockMeetingUsecase) CreateMeeting(ctx context.Context, hostID string, request *requests.CreateMeeting) (*responses.CreatedMeeting, error) {
	args := m.Called(ctx, hostID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CreatedMeeting), args.Error(1)
}

func (m *MockMeetingUsecase) ListMeetings(ctx context.Context, viewerID string, now time.Time) (responses.MeetingBuckets, error) {
	args := m.Called(ctx, viewerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(responses.MeetingBuckets), args.Error(1)
}

func (m *MockMeetingUsecase) meeting(args mock.Arguments) (*responses.Meeting, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.Meeting), args.Error(1)
}

func (m *MockMeetingUsecase) AcceptMeeting(ctx context.Context, meetingID, viewerID string) (*responses.Meeting, error) {
	return m.meeting(m.Called(ctx, meetingID, viewerID))
}

func (m *MockMeetingUsecase) RejectMeeting(ctx context.Context, meetingID, viewerID string) (*responses.Meeting, error) {
	return m.meeting(m.Called(ctx, meetingID, viewerID))
}

func (m *MockMeetingUsecase) CancelMeeting(ctx context.Context, meetingID, viewerID string) (*responses.Meeting, error) {
	return m.meeting(m.Called(ctx, meetingID, viewerID))
}

func (m *MockMeetingUsecase) ExportCalendar(ctx context.Context, viewerID string, now time.Time) (*responses.CalendarExport, error) {
	args := m.Called(ctx, viewerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.CalendarExport), args.Error(1)
}

const routerTestSecret = "router-secret"

type routerFixture struct {
	availability *MockAvailabilityUsecase
	meetings     *MockMeetingUsecase
	router       *chi.Mux
	token        string
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	logger := zap.NewNop()
	cfg := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			MaxRequests:                1000,
			RequestBodyLimitInMegabyte: 1,
		},
		JWT: config.AppJWT{Secret: routerTestSecret},
	}

	f := &routerFixture{
		availability: new(MockAvailabilityUsecase),
		meetings:     new(MockMeetingUsecase),
		router:       chi.NewRouter(),
	}
	m := middlewares.NewMiddlewares(logger, cfg, ratelimiter.NewResourceLimiter(nil, logger))
	SetupRoutes(f.router, cfg, m,
		controllers.NewAvailabilityController(logger, f.availability),
		controllers.NewMeetingController(logger, f.meetings),
	)

	token, err := utils.GenerateViewerJWT("viewer-1", routerTestSecret, time.Hour)
	require.NoError(t, err)
	f.token = token
	return f
}

func (f *routerFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+f.token)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestAvailabilityRoutes(t *testing.T) {
	t.Run("Missing Token Is Unauthorized", func(t *testing.T) {
		f := newRouterFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/availability/alice", nil)
		rr := httptest.NewRecorder()
		f.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		f.availability.AssertNotCalled(t, "GetAvailability", mock.Anything, mock.Anything)
	})

	t.Run("Get Availability Of Another User", func(t *testing.T) {
		f := newRouterFixture(t)
		f.availability.On("GetAvailability", mock.Anything, "alice").Return(scheduling.DefaultWeeklyAvailability(), nil)

		rr := f.do(http.MethodGet, "/api/v1/availability/alice", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"monday"`)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Add Slot Uses The Viewer", func(t *testing.T) {
		f := newRouterFixture(t)
		slot := scheduling.MustInterval(scheduling.MustTimeValue(9, 0), scheduling.MustTimeValue(10, 0))
		f.availability.On("AddSlot", mock.Anything, "viewer-1", time.Monday, slot).Return(scheduling.DefaultWeeklyAvailability(), nil)

		rr := f.do(http.MethodPost, "/api/v1/availability/days/Monday/slots", map[string]string{"start": "9:00 AM", "end": "10:00"})

		assert.Equal(t, http.StatusCreated, rr.Code)
		f.availability.AssertExpectations(t)
	})

	t.Run("Unknown Day Is Bad Request", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodPost, "/api/v1/availability/days/funday/slots", map[string]string{"start": "09:00", "end": "10:00"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Slot End Before Start Is Bad Request", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodPost, "/api/v1/availability/days/monday/slots", map[string]string{"start": "11:00", "end": "10:00"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.availability.AssertNotCalled(t, "AddSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Non Numeric Slot Index Is Not Found", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodDelete, "/api/v1/availability/days/monday/slots/first", nil)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Copy Day To Targets", func(t *testing.T) {
		f := newRouterFixture(t)
		f.availability.On("CopyDay", mock.Anything, "viewer-1", time.Monday, []time.Weekday{time.Tuesday, time.Wednesday}).
			Return(scheduling.DefaultWeeklyAvailability(), nil)

		rr := f.do(http.MethodPost, "/api/v1/availability/days/mon/copy", map[string][]string{"targets": {"tuesday", "Wed"}})

		assert.Equal(t, http.StatusOK, rr.Code)
		f.availability.AssertExpectations(t)
	})

	t.Run("Time Gap Out Of Range Is Bad Request", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodPut, "/api/v1/availability/time-gap", map[string]int{"timeGap": 200})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.availability.AssertNotCalled(t, "SetTimeGap", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Field Is Bad Request", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodPatch, "/api/v1/availability/days/monday", `{"isAvailable":true,"extra":1}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Check Booking Returns Decision", func(t *testing.T) {
		f := newRouterFixture(t)
		decision := scheduling.Decision{Kind: scheduling.DecisionConflict, Message: "overlaps"}
		f.availability.On("CheckBooking", mock.Anything, "alice", mock.Anything).Return(decision, nil)

		rr := f.do(http.MethodPost, "/api/v1/availability/alice/check", map[string]string{
			"date": "2026-03-10", "startTime": "10:00", "duration": "30 min",
		})

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"Conflict"`)
	})

	t.Run("Openings Reject Bad Dates", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodGet, "/api/v1/availability/alice/openings?from=tomorrow", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestMeetingRoutes(t *testing.T) {
	t.Run("Create Meeting", func(t *testing.T) {
		f := newRouterFixture(t)
		f.meetings.On("CreateMeeting", mock.Anything, "viewer-1", mock.MatchedBy(func(r *requests.CreateMeeting) bool {
			return r.Title == "Sync" && len(r.Participants) == 1
		})).Return(&responses.CreatedMeeting{Meeting: responses.Meeting{ID: "m-1"}}, nil)

		rr := f.do(http.MethodPost, "/api/v1/meetings", map[string]interface{}{
			"title": "Sync", "date": "2026-03-10", "startTime": "10:00", "endTime": "11:00",
			"participants": []string{"bob"},
		})

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"m-1"`)
	})

	t.Run("Create Meeting Needs End Or Duration", func(t *testing.T) {
		f := newRouterFixture(t)

		rr := f.do(http.MethodPost, "/api/v1/meetings", map[string]interface{}{
			"title": "Sync", "date": "2026-03-10", "startTime": "10:00",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		f.meetings.AssertNotCalled(t, "CreateMeeting", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("List Meetings", func(t *testing.T) {
		f := newRouterFixture(t)
		f.meetings.On("ListMeetings", mock.Anything, "viewer-1", mock.Anything).Return(responses.MeetingBuckets{
			scheduling.CategoryUpcoming: {},
		}, nil)

		rr := f.do(http.MethodGet, "/api/v1/meetings", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"upcoming"`)
	})

	t.Run("Accept Meeting", func(t *testing.T) {
		f := newRouterFixture(t)
		f.meetings.On("AcceptMeeting", mock.Anything, "m-1", "viewer-1").
			Return(&responses.Meeting{ID: "m-1", Status: scheduling.StatusAccepted}, nil)

		rr := f.do(http.MethodPost, "/api/v1/meetings/m-1/accept", nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		f.meetings.AssertExpectations(t)
	})

	t.Run("Calendar Export Is Throttled", func(t *testing.T) {
		f := newRouterFixture(t)
		f.meetings.On("ExportCalendar", mock.Anything, "viewer-1", mock.Anything).
			Return(&responses.CalendarExport{URL: "https://minio.local/x.ics", Events: 2}, nil).Once()

		first := f.do(http.MethodPost, "/api/v1/meetings/calendar-export", nil)
		second := f.do(http.MethodPost, "/api/v1/meetings/calendar-export", nil)

		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.NotEmpty(t, second.Header().Get(constvars.HeaderRetryAfter))
	})
}
