package middlewares

import (
	"errors"
	"meetslot-service/internal/app/services/shared/ratelimiter"
	"meetslot-service/internal/pkg/constvars"
	"meetslot-service/internal/pkg/exceptions"
	"meetslot-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// CreateRateLimiter limits every client by IP.
func (m *Middlewares) CreateRateLimiter() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}

// BookingLimiter caps how many bookings a viewer may attempt per minute. The
// counter lives in redis so the cap holds across instances. A redis failure
// lets the request through.
func (m *Middlewares) BookingLimiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewerID := utils.GetViewerID(r.Context())
		out, err := m.ResourceLimiter.ApplyResourceLimiter(r.Context(), &ratelimiter.ApplyResourceLimiterInput{
			ResourceName:      viewerID,
			LimiterGroupName:  constvars.RedisBookingLimiterGroup,
			WindowDurationSec: 60,
			MaxQuota:          m.InternalConfig.Scheduling.BookingRequestsPerMinute,
		})
		if err != nil {
			m.Log.Warn("Middlewares.BookingLimiter limiter unavailable, allowing request",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingViewerIDKey, viewerID),
				zap.Error(err),
			)
			next.ServeHTTP(w, r)
			return
		}
		if !out.Allowed {
			w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(out.RetryAfterSecs))
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errors.New("booking quota exceeded")))
			return
		}
		next.ServeHTTP(w, r)
	})
}
