package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"min":       "must be at least %s",
	"max":       "must be at most %s",
	"gte":       "must be greater than or equal to %s",
	"lte":       "must be less than or equal to %s",
	"oneof":     "must be one of [%s]",
	"dive":      "is invalid",
	"weekday":   "must be a day of the week such as monday",
	"clocktime": "must be a time such as 09:00 or 9:00 AM",
	"isodate":   "must be a date such as 2024-03-04 or 04/03/24",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientTooManyRequests               = "too many requests, please try again later"
	ErrClientInvalidAvailability           = "your availability has problems, please fix them and try again"
	ErrClientSlotOverlap                   = "this slot overlaps another slot on the same day"
	ErrClientLastSlot                      = "an available day needs at least one slot, turn the day off instead"
	ErrClientDayUnavailable                = "this day is turned off, turn it on before editing its slots"
	ErrClientSlotNotFound                  = "slot not found"
	ErrClientInvalidTime                   = "the time you entered is not valid"
	ErrClientInvalidDate                   = "the date you entered is not valid"
	ErrClientInvalidDuration               = "the duration you entered is not valid"
	ErrClientInvalidTimeGap                = "time gap must be between 0 and 120 minutes"
	ErrClientMeetingNotFound               = "meeting not found"
	ErrClientMeetingClosed                 = "this meeting is already cancelled"
	ErrClientMeetingChanged                = "this meeting was changed by someone else, please reload and try again"
	ErrClientAlreadyResponded              = "you already responded to this meeting"
	ErrClientNotParticipant                = "you are not invited to this meeting"
	ErrClientOnlyHostCanCancel             = "only the host can cancel this meeting"
	ErrClientBookingNotAvailable           = "the requested time is not available"
	ErrClientBookingInProgress             = "another booking for this day is being processed, please try again"
	ErrClientAvailabilityInProgress        = "your availability is being updated, please try again"
	ErrClientInvalidOpeningsRange          = "the date range is not valid"
)

// Error messages for developers
const (
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed           = "validation failed"
	ErrDevURLParamValidationFailed   = "parameter %s validation failed"
	ErrDevQueryParamValidationFailed = "query parameter %s validation failed"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevAvailabilityValidation     = "availability validation failed"
	ErrDevSchedulingRule             = "scheduling rule violated"
	ErrDevBookingDecision            = "booking rejected with decision %s"
	ErrDevBookingLockNotAcquired     = "booking lock %s not acquired"
	ErrDevLockNotAcquired            = "lock %s not acquired"
	ErrDevOpeningsRange              = "openings range from %s to %s is invalid or longer than %d days"
	ErrDevMeetingConcurrentUpdate    = "meeting %s was modified concurrently"
	ErrDevMeetingNotFound            = "meeting %s not found"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthSubjectMissing        = "authorization token has no subject"

	// Mongo DB
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"

	// Redis
	ErrDevRedisGetNoData       = "failed to get data with key %s from redis"
	ErrDevRedisSetData         = "failed to set data to redis"
	ErrDevRedisDeleteData      = "failed to delete data from redis"
	ErrDevRedisIncrementValue  = "failed to increment value in redis"
	ErrDevRedisExpire          = "failed to set expiry in redis"
	ErrDevRedisSAdd            = "failed to add members to redis set"
	ErrDevRedisSIsMember       = "failed to check redis set membership"
	ErrDevRedisUnlock          = "failed to release redis lock"
	ErrDevRabbitMQPublish      = "failed to publish message to queue %s"
	ErrDevMinioCreateObject    = "failed to create object in bucket %s"
	ErrDevMinioPresignedObject = "failed to presign object in bucket %s"
	ErrDevMinioBucket          = "failed to prepare bucket %s"
)
