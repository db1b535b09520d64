package meetings

import (
	"context"
	"meetslot-service/internal/app/config"
	"meetslot-service/internal/app/contracts"
	"meetslot-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// leaderLockTTL applies when no leader lock TTL is configured.
const leaderLockTTL = 2 * time.Minute

// Worker periodically announces meetings that have ended. Only the instance
// holding the leader lock sweeps, and each meeting is announced once.
type Worker struct {
	log       *zap.Logger
	cfg       *config.InternalConfig
	locker    contracts.LockerService
	redis     contracts.RedisRepository
	meetings  contracts.MeetingRepository
	publisher contracts.MeetingEventPublisher
	limiter   *rate.Limiter
	leaderTTL time.Duration
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
	now       func() time.Time
}

func NewWorker(
	log *zap.Logger,
	cfg *config.InternalConfig,
	lockerSvc contracts.LockerService,
	redisRepo contracts.RedisRepository,
	meetingRepo contracts.MeetingRepository,
	publisher contracts.MeetingEventPublisher,
) *Worker {
	perSecond := cfg.Meetings.EventsPerSecond
	if perSecond <= 0 {
		perSecond = 10
	}
	leaderTTL := cfg.Meetings.WorkerLeaderLockTTL
	if leaderTTL <= 0 {
		leaderTTL = leaderLockTTL
	}
	return &Worker{
		log:       log,
		cfg:       cfg,
		locker:    lockerSvc,
		redis:     redisRepo,
		meetings:  meetingRepo,
		publisher: publisher,
		limiter:   rate.NewLimiter(rate.Limit(perSecond), perSecond),
		leaderTTL: leaderTTL,
		now:       time.Now,
	}
}

// Start schedules the sweep on the configured cron spec.
func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.cfg.Meetings.WorkerCronSpec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("meetings.worker: invalid cron spec; falling back to @every 5m",
			zap.String("spec", w.cfg.Meetings.WorkerCronSpec), zap.Error(err))
		c = cron.New()
		_, _ = c.AddFunc("@every 5m", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop cancels in-flight sweeps and waits for the running job to return.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	acquired, token, err := w.locker.TryLock(ctx, constvars.RedisMeetingWorkerLeaderKey, w.leaderTTL)
	if err != nil {
		w.log.Warn("meetings.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("meetings.worker: leader lock held by another instance")
		return
	}
	defer func() {
		if err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisMeetingWorkerLeaderKey, token); err != nil {
			w.log.Warn("meetings.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go w.refreshLeader(refreshCtx, token)

	published, err := w.SweepEndedMeetings(ctx, w.now())
	if err != nil {
		w.log.Warn("meetings.worker: sweep failed", zap.Int(constvars.LoggingCountKey, published), zap.Error(err))
		return
	}
	w.log.Info("meetings.worker: sweep finished", zap.Int(constvars.LoggingCountKey, published))
}

func (w *Worker) refreshLeader(ctx context.Context, token string) {
	tick := time.NewTicker(w.leaderTTL / 2)
	defer tick.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := w.locker.Refresh(ctx, constvars.RedisMeetingWorkerLeaderKey, token, w.leaderTTL); err != nil {
				w.log.Warn("meetings.worker: failed to refresh leader lock", zap.Error(err))
			}
		}
	}
}

// SweepEndedMeetings publishes an ended event for every open meeting that
// finished within the lookback window and was not announced before. It returns
// how many events were published.
func (w *Worker) SweepEndedMeetings(ctx context.Context, now time.Time) (int, error) {
	lookback := time.Duration(w.cfg.Meetings.WorkerLookbackInHours) * time.Hour
	if lookback <= 0 {
		lookback = 24 * time.Hour
	}

	ended, err := w.meetings.FindEndedBetween(ctx, now.Add(-lookback), now)
	if err != nil {
		return 0, err
	}

	published := 0
	for i := range ended {
		doc := &ended[i]
		seen, err := w.redis.IsSetMember(ctx, constvars.RedisEndedMeetingsSetKey, doc.ID)
		if err != nil {
			return published, err
		}
		if seen {
			continue
		}
		if err := w.limiter.Wait(ctx); err != nil {
			return published, err
		}

		event := newMeetingEvent(constvars.EventMeetingEnded, doc.Record(), "", now)
		if err := w.publisher.Publish(ctx, event); err != nil {
			w.log.Warn("meetings.worker: failed to publish ended event",
				zap.String(constvars.LoggingMeetingIDKey, doc.ID), zap.Error(err))
			continue
		}
		if _, err := w.redis.AddToSet(ctx, constvars.RedisEndedMeetingsSetKey, doc.ID); err != nil {
			return published, err
		}
		published++
	}

	if published > 0 {
		if _, err := w.redis.Expire(ctx, constvars.RedisEndedMeetingsSetKey, 2*lookback); err != nil {
			return published, err
		}
	}
	return published, nil
}
