package ratelimit

import (
	"context"
	"time"
)

// Limiter answers whether a caller identified by key may proceed within the
// given window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Remaining(ctx context.Context, key string, limit int, window time.Duration) (int64, error)
}
