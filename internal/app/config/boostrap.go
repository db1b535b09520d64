package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to gracefully stop background workers
	WorkerStop func()
}

// Shutdown stops the workers first so nothing writes to a closed connection.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		b.Logger.Info("Successfully stopped background workers")
	}

	if err := b.MongoDB.Disconnect(ctx); err != nil {
		return err
	}
	b.Logger.Info("Successfully closing MongoDB")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	b.Logger.Info("Successfully closing Redis")

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	b.Logger.Info("Successfully closing RabbitMQ")

	// Sync fails on stdout in some environments; the result is ignored.
	_ = b.Logger.Sync()
	return nil
}
