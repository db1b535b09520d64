package config

import "time"

type InternalConfig struct {
	App        App           `mapstructure:"app"`
	JWT        AppJWT        `mapstructure:"jwt"`
	Minio      AppMinio      `mapstructure:"minio"`
	RabbitMQ   AppRabbitMQ   `mapstructure:"rabbitmq"`
	Scheduling AppScheduling `mapstructure:"scheduling"`
	Meetings   AppMeetings   `mapstructure:"meetings"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	FrontendDomain             string `mapstructure:"frontend_domain"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

type AppJWT struct {
	Secret string `mapstructure:"secret"`
}

type AppMinio struct {
	CalendarBucketName             string `mapstructure:"calendar_bucket_name"`
	CalendarUrlExpiryTimeInMinutes int    `mapstructure:"calendar_url_expiry_time_in_minutes"`
}

type AppRabbitMQ struct {
	MeetingEventsQueue string `mapstructure:"meeting_events_queue"`
}

// AppScheduling tunes availability lookups and booking checks.
type AppScheduling struct {
	InviteeCheckTimeoutInMillis   int `mapstructure:"invitee_check_timeout_in_millis"`
	InviteeCheckConcurrency       int `mapstructure:"invitee_check_concurrency"`
	BookingLockTTLInSeconds       int `mapstructure:"booking_lock_ttl_in_seconds"`
	AvailabilityCacheTTLInSeconds int `mapstructure:"availability_cache_ttl_in_seconds"`
	BookingRequestsPerMinute      int `mapstructure:"booking_requests_per_minute"`
	MaxOpeningsRangeInDays        int `mapstructure:"max_openings_range_in_days"`
}

type AppMeetings struct {
	// WorkerCronSpec is the schedule of the ended-meeting sweep, e.g. "@every 5m"
	WorkerCronSpec string `mapstructure:"worker_cron_spec"`
	// WorkerLookbackInHours bounds how far back the sweep reads meetings
	WorkerLookbackInHours int           `mapstructure:"worker_lookback_in_hours"`
	WorkerLeaderLockTTL   time.Duration `mapstructure:"worker_leader_lock_ttl"`
	EventsPerSecond       int           `mapstructure:"events_per_second"`
}
