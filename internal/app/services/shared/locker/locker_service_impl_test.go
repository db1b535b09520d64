package locker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Expire(ctx context.Context, key string, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func (m *MockRedisRepository) AddToSet(ctx context.Context, key string, values ...interface{}) (int64, error) {
	args := m.Called(ctx, key, values)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRedisRepository) IsSetMember(ctx context.Context, key string, value interface{}) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestLockService(t *testing.T) {
	ctx := context.Background()
	const key = "booking:host:2024-03-04"

	t.Run("TryLock Returns Random Value When Acquired", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, key, mock.AnythingOfType("string"), 10*time.Second).Return(true, nil)
		locker := NewLockService(repo, zap.NewNop())

		acquired, value, err := locker.TryLock(ctx, key, 10*time.Second)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)
		repo.AssertExpectations(t)
	})

	t.Run("TryLock Reports Contention Without Error", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, key, mock.Anything, mock.Anything).Return(false, nil)
		locker := NewLockService(repo, zap.NewNop())

		acquired, value, err := locker.TryLock(ctx, key, time.Second)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("Unlock Deletes Owned Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, key).Return(`"token-1"`, nil)
		repo.On("Delete", ctx, key).Return(nil)
		locker := NewLockService(repo, zap.NewNop())

		err := locker.Unlock(ctx, key, "token-1")

		require.NoError(t, err)
		repo.AssertCalled(t, "Delete", ctx, key)
	})

	t.Run("Unlock Refuses Lock Held By Someone Else", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, key).Return(`"token-2"`, nil)
		locker := NewLockService(repo, zap.NewNop())

		err := locker.Unlock(ctx, key, "token-1")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unlock Of Expired Lock Is A No Op", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, key).Return("", nil)
		locker := NewLockService(repo, zap.NewNop())

		assert.NoError(t, locker.Unlock(ctx, key, "token-1"))
	})

	t.Run("Refresh Extends Owned Lock", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, key).Return(`"token-1"`, nil)
		repo.On("Expire", ctx, key, time.Minute).Return(true, nil)
		locker := NewLockService(repo, zap.NewNop())

		require.NoError(t, locker.Refresh(ctx, key, "token-1", time.Minute))
		repo.AssertExpectations(t)
	})

	t.Run("Refresh Of Expired Lock Fails", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, key).Return("", nil)
		locker := NewLockService(repo, zap.NewNop())

		assert.Error(t, locker.Refresh(ctx, key, "token-1", time.Minute))
	})
}
