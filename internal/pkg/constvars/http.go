package constvars

const (
	MIMEApplicationJSON = "application/json"
	MIMETextCalendar    = "text/calendar; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusCreated             = 201
	StatusBadRequest          = 400
	StatusUnauthorized        = 401
	StatusForbidden           = 403
	StatusNotFound            = 404
	StatusConflict            = 409
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRetryAfter    = "Retry-After"
	HeaderXRequestID    = "X-Request-ID"
)

const (
	URLParamUserID    = "userID"
	URLParamDay       = "day"
	URLParamIndex     = "index"
	URLParamMeetingID = "meetingID"

	QueryParamFrom = "from"
	QueryParamTo   = "to"
)
