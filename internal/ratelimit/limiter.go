package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// Limiter reports whether the client identified by key may proceed.
//
//go:generate mockery --name Limiter --output mock_Limiter.go
type Limiter interface {
	Check(ctx context.Context, key string) (bool, error)
}

var _ Limiter = (*RedisLimiter)(nil)

// RedisLimiter counts requests in Redis using a sliding window.
type RedisLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

// NewRedisLimiter allows up to requests per window for each key.
func NewRedisLimiter(client *redis.Client, requests int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		limiter: redis_rate.NewLimiter(client),
		limit: redis_rate.Limit{
			Rate:   requests,
			Burst:  requests,
			Period: window,
		},
	}
}

func (l *RedisLimiter) Check(ctx context.Context, key string) (bool, error) {
	res, err := l.limiter.Allow(ctx, key, l.limit)
	if err != nil {
		return false, err
	}
	return res.Allowed > 0, nil
}
