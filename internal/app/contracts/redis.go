package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Expire(ctx context.Context, key string, exp time.Duration) (bool, error)
	// IncrementWithTTL increments key and sets its TTL when the key is new.
	IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error)
	AddToSet(ctx context.Context, key string, values ...interface{}) (int64, error)
	IsSetMember(ctx context.Context, key string, value interface{}) (bool, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
}
