package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window counter. Each (key, window) pair maps to a
// Redis counter that expires when the window rolls over.
type RedisLimiter struct {
	client *redis.Client
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	redisKey := l.windowKey(key, window)

	pipe := l.client.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return incr.Val() <= int64(limit), nil
}

func (l *RedisLimiter) Remaining(ctx context.Context, key string, limit int, window time.Duration) (int64, error) {
	count, err := l.client.Get(ctx, l.windowKey(key, window)).Int64()
	if err != nil {
		if err == redis.Nil {
			return int64(limit), nil
		}
		return 0, fmt.Errorf("failed to read rate limit counter: %w", err)
	}

	remaining := int64(limit) - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func (l *RedisLimiter) windowKey(key string, window time.Duration) string {
	bucket := time.Now().UnixNano() / int64(window)
	return fmt.Sprintf("ratelimit:%s:%d:%d", key, window, bucket)
}
