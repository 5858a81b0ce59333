package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/fasthash/fnv1a"
)

const keyPrefix = "ratelimit:"

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAfter time.Duration
}

// Limiter counts requests per client in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type Config struct {
	Limit  int
	Window time.Duration
}

func (c Config) validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("rate limit must be > 0")
	}
	if c.Window < time.Second {
		return fmt.Errorf("rate limit window must be >= 1s")
	}
	return nil
}

// window returns the start of the fixed window containing now and the time
// left until it closes.
func (c Config) window(now time.Time) (time.Time, time.Duration) {
	start := now.Truncate(c.Window)
	return start, start.Add(c.Window).Sub(now)
}

func (c Config) decide(count int64, resetAfter time.Duration) Decision {
	remaining := c.Limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:    count <= int64(c.Limit),
		Limit:      c.Limit,
		Remaining:  remaining,
		ResetAfter: resetAfter,
	}
}

// bucketKey hashes the client identity so raw addresses never reach storage.
func bucketKey(windowStart time.Time, client string) string {
	return keyPrefix + strconv.FormatInt(windowStart.Unix(), 10) + ":" + strconv.FormatUint(fnv1a.HashString64(client), 16)
}
