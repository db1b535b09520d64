package availability

import (
	"context"
	"fmt"
	"meetslot-service/internal/app/config"
	"meetslot-service/internal/app/contracts"
	"meetslot-service/internal/app/models"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/dto/responses"
	"meetslot-service/internal/pkg/exceptions"
	"meetslot-service/internal/pkg/scheduling"
	"meetslot-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	BookingSource          contracts.BookingSource
	RedisRepository        contracts.RedisRepository
	LockerService          contracts.LockerService
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

func NewAvailabilityUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	bookingSource contracts.BookingSource,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		AvailabilityRepository: availabilityRepository,
		BookingSource:          bookingSource,
		RedisRepository:        redisRepository,
		LockerService:          lockerService,
		InternalConfig:         internalConfig,
		Log:                    logger,
	}
}

// GetAvailability returns the user's availability, creating and storing the
// default week on first access.
func (uc *availabilityUsecase) GetAvailability(ctx context.Context, userID string) (scheduling.WeeklyAvailability, error) {
	return uc.load(ctx, userID, true)
}

// SaveAvailability refuses to store anything that fails validation and reports
// every problem at once.
func (uc *availabilityUsecase) SaveAvailability(ctx context.Context, userID string, availability scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error) {
	return uc.mutate(ctx, userID, func(scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error) {
		return availability, nil
	})
}

func (uc *availabilityUsecase) AddSlot(ctx context.Context, userID string, day time.Weekday, slot scheduling.Interval) (scheduling.WeeklyAvailability, error) {
	return uc.mutate(ctx, userID, func(w scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error) {
		return w.AddInterval(day, slot)
	})
}

func (uc *availabilityUsecase) UpdateSlot(ctx context.Context, userID string, day time.Weekday, index int, slot scheduling.Interval) (scheduling.WeeklyAvailability, error) {
	return uc.mutate(ctx, userID, func(w scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error) {
		return w.UpdateInterval(day, index, slot)
	})
}

func (uc *availabilityUsecase) RemoveSlot(ctx context.Context, userID string, day time.Weekday, index int) (scheduling.WeeklyAvailability, error) {
	return uc.mutate(ctx, userID, func(w scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error) {
		return w.RemoveInterval(day, index)
	})
}

func (uc *availabilityUsecase) CopyDay(ctx context.Context, userID string, source time.Weekday, targets ...time.Weekday) (scheduling.WeeklyAvailability, error) {
	return uc.mutate(ctx, userID, func(w scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error) {
		return w.CopyDayTo(source, targets...), nil
	})
}

func (uc *availabilityUsecase) SetDayAvailable(ctx context.Context, userID string, day time.Weekday, available bool) (scheduling.WeeklyAvailability, error) {
	return uc.mutate(ctx, userID, func(w scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error) {
		return w.SetDayAvailable(day, available), nil
	})
}

func (uc *availabilityUsecase) SetTimeGap(ctx context.Context, userID string, minutes int) (scheduling.WeeklyAvailability, error) {
	return uc.mutate(ctx, userID, func(w scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error) {
		return w.SetTimeGap(minutes)
	})
}

// CheckBooking decides whether hostID can take the requested booking given the
// host's availability and what the host already booked that day.
func (uc *availabilityUsecase) CheckBooking(ctx context.Context, hostID string, request scheduling.BookingRequest) (scheduling.Decision, error) {
	availability, err := uc.load(ctx, hostID, false)
	if err != nil {
		return scheduling.Decision{}, err
	}

	booked, err := uc.BookingSource.FindBookedIntervals(ctx, hostID, request.Date)
	if err != nil {
		return scheduling.Decision{}, err
	}

	decision := request.Check(availability, booked)
	uc.Log.Debug("availabilityUsecase.CheckBooking decision made",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, hostID),
		zap.String(constvars.LoggingDateKey, scheduling.FormatDate(request.Date)),
		zap.Stringer(constvars.LoggingIntervalKey, request.Interval),
		zap.String(constvars.LoggingDecisionKey, string(decision.Kind)),
	)
	return decision, nil
}

// CheckInvitees runs one check per identity concurrently. A check that fails or
// times out is reported as Available with Unknown set, and never stops the
// others.
func (uc *availabilityUsecase) CheckInvitees(ctx context.Context, identities []string, request scheduling.BookingRequest) []responses.InviteeCheck {
	results := make([]responses.InviteeCheck, len(identities))
	timeout := time.Duration(uc.InternalConfig.Scheduling.InviteeCheckTimeoutInMillis) * time.Millisecond

	var g errgroup.Group
	if limit := uc.InternalConfig.Scheduling.InviteeCheckConcurrency; limit > 0 {
		g.SetLimit(limit)
	}
	for i, identity := range identities {
		g.Go(func() error {
			checkCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			decision, err := uc.CheckBooking(checkCtx, identity, request)
			if err == nil {
				results[i] = responses.InviteeCheck{Identity: identity, Decision: decision}
				return nil
			}

			uc.Log.Warn("availabilityUsecase.CheckInvitees availability unknown, allowing booking",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingIdentityKey, identity),
				zap.Error(err),
			)
			results[i] = responses.InviteeCheck{
				Identity: identity,
				Decision: scheduling.Decision{
					Kind:    scheduling.DecisionAvailable,
					Message: "availability could not be checked",
				},
				Unknown: true,
				Error:   err.Error(),
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// ListOpenings lists the free windows userID offers between from and to, both
// inclusive.
func (uc *availabilityUsecase) ListOpenings(ctx context.Context, userID string, from, to time.Time) ([]responses.Opening, error) {
	maxDays := uc.InternalConfig.Scheduling.MaxOpeningsRangeInDays
	if to.Before(from) || (maxDays > 0 && to.Sub(from) > time.Duration(maxDays)*24*time.Hour) {
		return nil, exceptions.ErrOpeningsRange(scheduling.FormatDate(from), scheduling.FormatDate(to), maxDays)
	}

	availability, err := uc.load(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	dates, err := OpeningDates(availability, from, to)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	booked := make(map[string][]scheduling.Interval, len(dates))
	for _, date := range dates {
		intervals, err := uc.BookingSource.FindBookedIntervals(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		booked[scheduling.FormatDate(date)] = intervals
	}
	return ExpandOpenings(availability, dates, booked), nil
}

// load reads the availability through the cache. A user without a stored record
// gets the default week, which is persisted only when persistDefault is set.
func (uc *availabilityUsecase) load(ctx context.Context, userID string, persistDefault bool) (scheduling.WeeklyAvailability, error) {
	requestID := utils.GetRequestID(ctx)
	cacheKey := fmt.Sprintf(constvars.RedisAvailabilityCacheKeyFormat, userID)

	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err != nil {
		uc.Log.Warn("availabilityUsecase.load cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	} else if cached != "" {
		var availability scheduling.WeeklyAvailability
		if err := json.Unmarshal([]byte(cached), &availability); err == nil {
			return availability, nil
		}
		uc.Log.Warn("availabilityUsecase.load cached value unreadable, reloading",
			zap.String(constvars.LoggingRedisKey, cacheKey),
		)
	}

	doc, err := uc.AvailabilityRepository.FindByUserID(ctx, userID)
	if err != nil {
		return scheduling.WeeklyAvailability{}, err
	}

	var availability scheduling.WeeklyAvailability
	if doc == nil {
		availability = scheduling.DefaultWeeklyAvailability()
		if !persistDefault {
			return availability, nil
		}
		if err := uc.persist(ctx, userID, availability); err != nil {
			return scheduling.WeeklyAvailability{}, err
		}
		uc.Log.Info("availabilityUsecase.load created default availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, userID),
		)
	} else {
		availability, err = doc.ToWeekly()
		if err != nil {
			return scheduling.WeeklyAvailability{}, exceptions.ErrServerProcess(err)
		}
	}

	ttl := time.Duration(uc.InternalConfig.Scheduling.AvailabilityCacheTTLInSeconds) * time.Second
	if err := uc.RedisRepository.Set(ctx, cacheKey, availability, ttl); err != nil {
		uc.Log.Warn("availabilityUsecase.load cache write failed",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	return availability, nil
}

// mutate applies change to the stored availability under a per-user lock,
// validates the result and persists it.
func (uc *availabilityUsecase) mutate(ctx context.Context, userID string, change func(scheduling.WeeklyAvailability) (scheduling.WeeklyAvailability, error)) (scheduling.WeeklyAvailability, error) {
	lockKey := fmt.Sprintf(constvars.RedisAvailabilityLockKeyFormat, userID)
	lockTTL := time.Duration(uc.InternalConfig.Scheduling.BookingLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return scheduling.WeeklyAvailability{}, err
	}
	if !acquired {
		return scheduling.WeeklyAvailability{}, exceptions.ErrAvailabilityLocked(lockKey)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("availabilityUsecase.mutate unlock failed", zap.String(constvars.LoggingRedisKey, lockKey), zap.Error(err))
		}
	}()

	current, err := uc.load(ctx, userID, false)
	if err != nil {
		return scheduling.WeeklyAvailability{}, err
	}

	updated, err := change(current)
	if err != nil {
		return scheduling.WeeklyAvailability{}, exceptions.ErrScheduling(err)
	}
	if problems := updated.Validate(); len(problems) > 0 {
		uc.Log.Info("availabilityUsecase.mutate rejected invalid availability",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Int(constvars.LoggingCountKey, len(problems)),
			zap.String(constvars.LoggingErrorsKey, summarize(problems)),
		)
		return scheduling.WeeklyAvailability{}, exceptions.ErrScheduling(problems)
	}

	if err := uc.persist(ctx, userID, updated); err != nil {
		return scheduling.WeeklyAvailability{}, err
	}
	return updated, nil
}

func (uc *availabilityUsecase) persist(ctx context.Context, userID string, availability scheduling.WeeklyAvailability) error {
	doc := models.NewAvailability(userID, availability)
	doc.SetUpdatedAt(time.Now())
	if err := uc.AvailabilityRepository.Upsert(ctx, doc); err != nil {
		return err
	}

	cacheKey := fmt.Sprintf(constvars.RedisAvailabilityCacheKeyFormat, userID)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Warn("availabilityUsecase.persist cache invalidation failed",
			zap.String(constvars.LoggingRedisKey, cacheKey),
			zap.Error(err),
		)
	}
	return nil
}

func summarize(problems scheduling.ValidationErrors) string {
	kinds := make([]string, 0, len(problems))
	for _, p := range problems {
		kinds = append(kinds, fmt.Sprintf("%s:%s", p.Day, p.Kind))
	}
	return strings.Join(kinds, ",")
}
