package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestRedisLimiter_Allow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client)
	ctx := context.Background()

	key := "test-key"
	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, key, 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, key, 5, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed, "6th request should be denied")
}

func TestRedisLimiter_Allow_ZeroLimitDisables(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client)

	allowed, err := limiter.Allow(context.Background(), "unlimited", 0, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisLimiter_Remaining(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisLimiter(client)
	ctx := context.Background()

	key := "remaining-key"
	remaining, err := limiter.Remaining(ctx, key, 10, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(10), remaining)

	for i := 0; i < 3; i++ {
		_, err := limiter.Allow(ctx, key, 10, time.Minute)
		require.NoError(t, err)
	}

	remaining, err = limiter.Remaining(ctx, key, 10, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(7), remaining)
}
