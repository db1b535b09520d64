package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingViewerIDKey           = "viewer_id"
	LoggingUserIDKey             = "user_id"
	LoggingMeetingIDKey          = "meeting_id"
	LoggingDateKey               = "date"
	LoggingIntervalKey           = "interval"
	LoggingDecisionKey           = "decision"
	LoggingIdentityKey           = "identity"
	LoggingEventTypeKey          = "event_type"
	LoggingQueueKey              = "queue"
	LoggingBucketKey             = "bucket"
	LoggingObjectKey             = "object"
	LoggingCountKey              = "count"
	LoggingErrorsKey             = "errors"
	LoggingRedisKey              = "redis_key"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
)
