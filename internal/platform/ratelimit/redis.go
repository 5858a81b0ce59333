package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisLimiter struct {
	client *redis.Client
	cfg    Config
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, cfg Config) (*RedisLimiter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &RedisLimiter{client: client, cfg: cfg, now: time.Now}, nil
}

// Allow increments the client's counter for the current window. The key
// expires with the window so stale buckets need no cleanup.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	start, resetAfter := l.cfg.window(l.now())
	bucket := bucketKey(start, key)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, bucket)
	pipe.ExpireNX(ctx, bucket, l.cfg.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("rate limit incr key=%s: %w", bucket, err)
	}

	return l.cfg.decide(incr.Val(), resetAfter), nil
}
