package utils

import (
	"context"
	"meetslot-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// LogOperation times fn and logs its outcome at debug level, or at error level
// when it fails.
func LogOperation(logger *zap.Logger, operation string, requestID string, fn func() error) error {
	start := time.Now()
	err := fn()
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("operation", operation),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
		zap.Bool(constvars.LoggingSuccessKey, err == nil),
	}
	if err != nil {
		logger.Error("Operation failed", append(fields, zap.Error(err))...)
		return err
	}
	logger.Debug("Operation completed", fields...)
	return nil
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetViewerID(ctx context.Context) string {
	if viewerID, ok := ctx.Value(constvars.CONTEXT_VIEWER_ID_KEY).(string); ok {
		return viewerID
	}
	return ""
}

func WithViewerID(ctx context.Context, viewerID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_VIEWER_ID_KEY, viewerID)
}
