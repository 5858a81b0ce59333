package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter is a single-process limiter for local runs and tests.
type MemoryLimiter struct {
	mu      sync.Mutex
	cfg     Config
	now     func() time.Time
	window  time.Time
	buckets map[string]int64
}

func NewMemoryLimiter(cfg Config) (*MemoryLimiter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &MemoryLimiter{cfg: cfg, now: time.Now, buckets: make(map[string]int64)}, nil
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	start, resetAfter := l.cfg.window(l.now())

	l.mu.Lock()
	defer l.mu.Unlock()

	if !start.Equal(l.window) {
		l.window = start
		l.buckets = make(map[string]int64)
	}
	bucket := bucketKey(start, key)
	l.buckets[bucket]++

	return l.cfg.decide(l.buckets[bucket], resetAfter), nil
}
