package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_VIEWER_ID_KEY            ContextKey = "viewer_id"
)

const (
	REQUEST_ID_PREFIX = "MEETSLOT_SVC_"
)

const (
	MongoCollectionAvailabilities = "availabilities"
	MongoCollectionMeetings       = "meetings"
)

// Redis key formats
const (
	RedisAvailabilityCacheKeyFormat = "availability:%s"
	RedisAvailabilityLockKeyFormat  = "availability:%s:lock"
	RedisBookingLockKeyFormat       = "booking:%s:%s"
	RedisEndedMeetingsSetKey        = "meetings:ended"
	RedisMeetingWorkerLeaderKey     = "meetings:worker:leader"
	RedisBookingLimiterGroup        = "BOOKING"
)

const (
	CalendarObjectNameFormat = "calendars/%s/%s.ics"
	CalendarProductID        = "-//meetslot//meetings//EN"
)
