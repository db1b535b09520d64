package middlewares

import (
	"errors"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/exceptions"
	"meetslot-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ViewerRateLimiter keeps one token bucket per viewer in memory. A viewer who
// runs out is blocked for blockTime.
type ViewerRateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	burst     int
	every     time.Duration
	blockTime time.Duration
}

func NewViewerRateLimiter(burst int, every, blockTime time.Duration) *ViewerRateLimiter {
	return &ViewerRateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		burst:     burst,
		every:     every,
		blockTime: blockTime,
	}
}

// Allow reports whether viewerID may proceed, and if not, for how long it stays
// blocked.
func (l *ViewerRateLimiter) Allow(viewerID string, now time.Time) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if blockedUntil, found := l.blocked[viewerID]; found {
		if now.Before(blockedUntil) {
			return false, blockedUntil.Sub(now)
		}
		delete(l.blocked, viewerID)
	}

	limiter, exists := l.limiters[viewerID]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(l.every), l.burst)
		l.limiters[viewerID] = limiter
	}
	if !limiter.AllowN(now, 1) {
		l.blocked[viewerID] = now.Add(l.blockTime)
		return false, l.blockTime
	}
	return true, 0
}

// ExportLimiter throttles calendar exports per viewer.
func (m *Middlewares) ExportLimiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, retryAfter := m.CalendarExportLimiter.Allow(utils.GetViewerID(r.Context()), time.Now())
		if !allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(int(retryAfter.Seconds())+1))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errors.New("calendar export quota exceeded")))
			return
		}
		next.ServeHTTP(w, r)
	})
}
