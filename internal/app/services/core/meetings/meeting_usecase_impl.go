package meetings

import (
	"context"
	"fmt"
	"meetslot-service/internal/app/config"
	"meetslot-service/internal/app/contracts"
	"meetslot-service/internal/app/models"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/dto/requests"
	"meetslot-service/internal/pkg/dto/responses"
	"meetslot-service/internal/pkg/exceptions"
	"meetslot-service/internal/pkg/scheduling"
	"meetslot-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type meetingUsecase struct {
	MeetingRepository   contracts.MeetingRepository
	AvailabilityUsecase contracts.AvailabilityUsecase
	LockerService       contracts.LockerService
	EventPublisher      contracts.MeetingEventPublisher
	Storage             contracts.Storage
	InternalConfig      *config.InternalConfig
	Location            *time.Location
	Log                 *zap.Logger
	now                 func() time.Time
}

func NewMeetingUsecase(
	meetingRepository contracts.MeetingRepository,
	availabilityUsecase contracts.AvailabilityUsecase,
	lockerService contracts.LockerService,
	eventPublisher contracts.MeetingEventPublisher,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.MeetingUsecase {
	return &meetingUsecase{
		MeetingRepository:   meetingRepository,
		AvailabilityUsecase: availabilityUsecase,
		LockerService:       lockerService,
		EventPublisher:      eventPublisher,
		Storage:             storage,
		InternalConfig:      internalConfig,
		Location:            loadLocation(internalConfig.App.Timezone, logger),
		Log:                 logger,
		now:                 time.Now,
	}
}

func loadLocation(name string, logger *zap.Logger) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("unknown timezone, falling back to UTC", zap.String("timezone", name), zap.Error(err))
		return time.UTC
	}
	return loc
}

// CreateMeeting books a meeting for hostID. The host's availability decides;
// invitee checks only produce warnings.
func (uc *meetingUsecase) CreateMeeting(ctx context.Context, hostID string, request *requests.CreateMeeting) (*responses.CreatedMeeting, error) {
	requestID := utils.GetRequestID(ctx)
	booking, err := scheduling.NormalizeBooking(request.ToRaw(hostID))
	if err != nil {
		return nil, exceptions.ErrScheduling(err)
	}
	participants := normalizeParticipants(hostID, request.Participants)

	lockKey := fmt.Sprintf(constvars.RedisBookingLockKeyFormat, hostID, scheduling.FormatDate(booking.Date))
	lockTTL := time.Duration(uc.InternalConfig.Scheduling.BookingLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLocked(lockKey)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("meetingUsecase.CreateMeeting unlock failed", zap.String(constvars.LoggingRedisKey, lockKey), zap.Error(err))
		}
	}()

	decision, err := uc.AvailabilityUsecase.CheckBooking(ctx, hostID, booking)
	if err != nil {
		return nil, err
	}
	if !decision.OK() {
		uc.Log.Info("meetingUsecase.CreateMeeting booking refused",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, hostID),
			zap.String(constvars.LoggingDecisionKey, string(decision.Kind)),
		)
		return nil, exceptions.ErrBookingNotAvailable(string(decision.Kind)).WithDetails(decision)
	}

	invitees := uc.AvailabilityUsecase.CheckInvitees(ctx, participants, booking)

	now := uc.now()
	rec := scheduling.MeetingRecord{
		ID:       utils.GenerateMeetingID(),
		HostID:   hostID,
		Title:    strings.TrimSpace(request.Title),
		Date:     booking.Date,
		Interval: booking.Interval,
		Status:   scheduling.StatusAccepted,
	}
	for _, identity := range participants {
		rec.Participants = append(rec.Participants, scheduling.Participant{Identity: identity, Status: scheduling.StatusPending})
	}
	if len(rec.Participants) > 0 {
		rec.Status = scheduling.StatusPending
	}

	doc := models.NewMeeting(rec, booking.DurationSource, uc.Location)
	doc.Version = 1
	doc.SetCreatedAtUpdatedAt(now)
	if err := uc.MeetingRepository.Insert(ctx, doc); err != nil {
		return nil, err
	}

	uc.publish(ctx, newMeetingEvent(constvars.EventMeetingCreated, rec, hostID, now))
	uc.Log.Info("meetingUsecase.CreateMeeting meeting created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMeetingIDKey, rec.ID),
		zap.String(constvars.LoggingUserIDKey, hostID),
		zap.Int(constvars.LoggingCountKey, len(participants)),
	)

	return &responses.CreatedMeeting{
		Meeting:  responses.NewMeeting(rec, scheduling.Classify(rec, hostID, now.In(uc.Location))),
		Invitees: invitees,
	}, nil
}

// ListMeetings buckets every meeting viewerID hosts or was invited to. Every
// category is present in the result, possibly empty.
func (uc *meetingUsecase) ListMeetings(ctx context.Context, viewerID string, now time.Time) (responses.MeetingBuckets, error) {
	records, err := uc.recordsFor(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	now = now.In(uc.Location)
	buckets := make(responses.MeetingBuckets, len(scheduling.Categories))
	for category, meetings := range scheduling.Bucket(records, viewerID, now) {
		rendered := make([]responses.Meeting, 0, len(meetings))
		for _, m := range meetings {
			rendered = append(rendered, responses.NewMeeting(m, category))
		}
		buckets[category] = rendered
	}
	return buckets, nil
}

func (uc *meetingUsecase) AcceptMeeting(ctx context.Context, meetingID, viewerID string) (*responses.Meeting, error) {
	return uc.transition(ctx, meetingID, viewerID, scheduling.Accept, constvars.EventMeetingAccepted)
}

func (uc *meetingUsecase) RejectMeeting(ctx context.Context, meetingID, viewerID string) (*responses.Meeting, error) {
	return uc.transition(ctx, meetingID, viewerID, scheduling.Reject, constvars.EventMeetingRejected)
}

func (uc *meetingUsecase) CancelMeeting(ctx context.Context, meetingID, viewerID string) (*responses.Meeting, error) {
	return uc.transition(ctx, meetingID, viewerID, scheduling.Cancel, constvars.EventMeetingCancelled)
}

// ExportCalendar uploads an iCalendar file of the viewer's upcoming and pending
// meetings and returns a time-limited link to it.
func (uc *meetingUsecase) ExportCalendar(ctx context.Context, viewerID string, now time.Time) (*responses.CalendarExport, error) {
	records, err := uc.recordsFor(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	now = now.In(uc.Location)
	buckets := scheduling.Bucket(records, viewerID, now)
	exported := append(append([]scheduling.MeetingRecord{}, buckets[scheduling.CategoryUpcoming]...), buckets[scheduling.CategoryPending]...)
	body, events := BuildCalendar(exported, uc.Location, now)

	bucketName := uc.InternalConfig.Minio.CalendarBucketName
	if err := uc.Storage.EnsureBucket(ctx, bucketName); err != nil {
		return nil, err
	}
	objectName := fmt.Sprintf(constvars.CalendarObjectNameFormat, viewerID, now.UTC().Format("20060102T150405Z"))
	err = utils.LogOperation(uc.Log, "meetingUsecase.ExportCalendar upload", utils.GetRequestID(ctx), func() error {
		_, err := uc.Storage.PutObject(ctx, bucketName, objectName, constvars.MIMETextCalendar, []byte(body))
		return err
	})
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.CalendarUrlExpiryTimeInMinutes) * time.Minute
	url, err := uc.Storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("meetingUsecase.ExportCalendar calendar exported",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingViewerIDKey, viewerID),
		zap.String(constvars.LoggingBucketKey, bucketName),
		zap.String(constvars.LoggingObjectKey, objectName),
		zap.Int(constvars.LoggingCountKey, events),
	)
	return &responses.CalendarExport{
		URL:        url,
		ObjectName: objectName,
		ExpiresAt:  now.Add(expiry).UTC().Format(time.RFC3339),
		Events:     events,
	}, nil
}

type transitionFunc func(scheduling.MeetingRecord, string) (scheduling.MeetingRecord, error)

func (uc *meetingUsecase) transition(ctx context.Context, meetingID, viewerID string, apply transitionFunc, eventType string) (*responses.Meeting, error) {
	doc, err := uc.MeetingRepository.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if doc == nil || !doc.Record().Involves(viewerID) {
		return nil, exceptions.ErrMeetingNotFound(meetingID)
	}

	updated, err := apply(doc.Record(), viewerID)
	if err != nil {
		return nil, exceptions.ErrScheduling(err)
	}

	now := uc.now()
	doc.Apply(updated, now)
	doc.SetUpdatedAt(now)
	saved, err := uc.MeetingRepository.Update(ctx, doc)
	if err != nil {
		return nil, err
	}
	if !saved {
		return nil, exceptions.ErrMeetingConcurrentUpdate(meetingID)
	}

	uc.publish(ctx, newMeetingEvent(eventType, updated, viewerID, now))
	uc.Log.Info("meetingUsecase.transition meeting updated",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingMeetingIDKey, meetingID),
		zap.String(constvars.LoggingViewerIDKey, viewerID),
		zap.String(constvars.LoggingEventTypeKey, eventType),
	)

	meeting := responses.NewMeeting(updated, scheduling.Classify(updated, viewerID, now.In(uc.Location)))
	return &meeting, nil
}

func (uc *meetingUsecase) recordsFor(ctx context.Context, viewerID string) ([]scheduling.MeetingRecord, error) {
	docs, err := uc.MeetingRepository.FindByViewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	records := make([]scheduling.MeetingRecord, 0, len(docs))
	for i := range docs {
		records = append(records, docs[i].Record())
	}
	return records, nil
}

// publish never fails the caller: the meeting is already stored, so a lost
// event is logged instead.
func (uc *meetingUsecase) publish(ctx context.Context, event *requests.MeetingEvent) {
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("meetingUsecase.publish failed to publish meeting event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.String(constvars.LoggingMeetingIDKey, event.MeetingID),
			zap.Error(err),
		)
	}
}

// normalizeParticipants trims identities and drops blanks, duplicates and the
// host.
func normalizeParticipants(hostID string, identities []string) []string {
	seen := map[string]bool{hostID: true}
	out := make([]string, 0, len(identities))
	for _, identity := range identities {
		identity = strings.TrimSpace(identity)
		if identity == "" || seen[identity] {
			continue
		}
		seen[identity] = true
		out = append(out, identity)
	}
	return out
}
