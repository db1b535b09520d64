package config

import (
	"meetslot-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "meetslot"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "*"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
		},
		JWT: AppJWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Minio: AppMinio{
			CalendarBucketName:             utils.GetEnvString("MEETING_CALENDAR_BUCKET", "meeting-calendars"),
			CalendarUrlExpiryTimeInMinutes: utils.GetEnvInt("MEETING_CALENDAR_URL_EXPIRY_MINUTES", 60),
		},
		RabbitMQ: AppRabbitMQ{
			MeetingEventsQueue: utils.GetEnvString("MEETING_EVENTS_QUEUE", "meeting_events"),
		},
		Scheduling: AppScheduling{
			InviteeCheckTimeoutInMillis:   utils.GetEnvInt("SCHEDULING_INVITEE_CHECK_TIMEOUT_MS", 2000),
			InviteeCheckConcurrency:       utils.GetEnvInt("SCHEDULING_INVITEE_CHECK_CONCURRENCY", 8),
			BookingLockTTLInSeconds:       utils.GetEnvInt("SCHEDULING_BOOKING_LOCK_TTL_SECONDS", 10),
			AvailabilityCacheTTLInSeconds: utils.GetEnvInt("SCHEDULING_AVAILABILITY_CACHE_TTL_SECONDS", 300),
			BookingRequestsPerMinute:      utils.GetEnvInt("SCHEDULING_BOOKING_REQUESTS_PER_MINUTE", 30),
			MaxOpeningsRangeInDays:        utils.GetEnvInt("SCHEDULING_MAX_OPENINGS_RANGE_DAYS", 62),
		},
		Meetings: AppMeetings{
			WorkerCronSpec:        utils.GetEnvString("MEETING_WORKER_CRON_SPEC", "@every 5m"),
			WorkerLookbackInHours: utils.GetEnvInt("MEETING_WORKER_LOOKBACK_HOURS", 48),
			WorkerLeaderLockTTL:   utils.GetEnvDuration("MEETING_WORKER_LEADER_LOCK_TTL", 2*time.Minute),
			EventsPerSecond:       utils.GetEnvInt("MEETING_EVENTS_PER_SECOND", 20),
		},
	}
}
