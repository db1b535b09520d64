package main

import (
	"context"
	"fmt"
	"log"
	"meetslot-service/internal/app/config"
	"meetslot-service/internal/app/delivery/http/controllers"
	"meetslot-service/internal/app/delivery/http/middlewares"
	"meetslot-service/internal/app/delivery/http/routers"
	"meetslot-service/internal/app/drivers/database"
	"meetslot-service/internal/app/drivers/logger"
	"meetslot-service/internal/app/drivers/messaging"
	"meetslot-service/internal/app/drivers/storage"
	"meetslot-service/internal/app/services/core/availability"
	"meetslot-service/internal/app/services/core/meetings"
	"meetslot-service/internal/app/services/shared/locker"
	"meetslot-service/internal/app/services/shared/publisher"
	"meetslot-service/internal/app/services/shared/ratelimiter"
	"meetslot-service/internal/app/services/shared/redis"
	minioStorage "meetslot-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	zapLogger.Info("Starting meetslot service", zap.String("version", Version), zap.String("tag", Tag))

	ctx := context.Background()

	mongoDB, err := database.NewMongoDB(ctx, driverConfig)
	if err != nil {
		zapLogger.Fatal("Error connecting to MongoDB", zap.Error(err))
	}
	redisClient, err := database.NewRedisClient(ctx, driverConfig)
	if err != nil {
		zapLogger.Fatal("Error connecting to Redis", zap.Error(err))
	}
	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig)
	if err != nil {
		zapLogger.Fatal("Error connecting to RabbitMQ", zap.Error(err))
	}
	minioClient, err := storage.NewMinio(driverConfig)
	if err != nil {
		zapLogger.Fatal("Error creating Minio client", zap.Error(err))
	}

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if err := bootstrapingTheApp(ctx, bootstrap); err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Failed to release resources", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)

	// Messaging
	eventPublisher, err := publisher.NewMeetingEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.MeetingEventsQueue, log)
	if err != nil {
		return err
	}

	// Storage
	calendarStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	// Meetings store, shared with availability as its booking source
	meetingRepository := meetings.NewMeetingMongoRepository(bootstrap.MongoDB, dbName)

	// Availability
	availabilityRepository := availability.NewAvailabilityMongoRepository(bootstrap.MongoDB, dbName)
	availabilityUsecase := availability.NewAvailabilityUsecase(
		availabilityRepository,
		meetings.NewBookingSource(meetingRepository),
		redisRepository,
		lockerService,
		bootstrap.InternalConfig,
		log,
	)
	availabilityController := controllers.NewAvailabilityController(log, availabilityUsecase)

	// Meetings
	meetingUsecase := meetings.NewMeetingUsecase(
		meetingRepository,
		availabilityUsecase,
		lockerService,
		eventPublisher,
		calendarStorage,
		bootstrap.InternalConfig,
		log,
	)
	meetingController := controllers.NewMeetingController(log, meetingUsecase)

	// Ended-meeting worker
	worker := meetings.NewWorker(log, bootstrap.InternalConfig, lockerService, redisRepository, meetingRepository, eventPublisher)
	worker.Start(ctx)
	bootstrap.WorkerStop = worker.Stop

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, bootstrap.InternalConfig, resourceLimiter)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, availabilityController, meetingController)
	return nil
}
