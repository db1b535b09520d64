package middlewares

import (
	"meetslot-service/internal/app/config"
	"meetslot-service/internal/app/services/shared/ratelimiter"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log                   *zap.Logger
	InternalConfig        *config.InternalConfig
	ResourceLimiter       *ratelimiter.ResourceLimiter
	// CalendarExportLimiter allows one export per minute with a burst of one.
	CalendarExportLimiter *ViewerRateLimiter
}

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig, resourceLimiter *ratelimiter.ResourceLimiter) *Middlewares {
	return &Middlewares{
		Log:                   logger,
		InternalConfig:        internalConfig,
		ResourceLimiter:       resourceLimiter,
		CalendarExportLimiter: NewViewerRateLimiter(1, time.Minute, time.Minute),
	}
}
