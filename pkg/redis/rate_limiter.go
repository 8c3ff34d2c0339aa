package redis

import (
	"context"
	"fmt"
	"time"
)

// AttemptLimiter is a fixed-window counter used to throttle verification
// attempts per target. Wrong and expired codes are charged identically so
// the limiter itself leaks nothing about why an attempt failed.
type AttemptLimiter struct {
	prefix string
	limit  int64
	window time.Duration
}

var (
	incrCounter   = Incr
	expireCounter = Expire
)

// NewAttemptLimiter creates a limiter allowing limit attempts per window
func NewAttemptLimiter(prefix string, limit int, window time.Duration) *AttemptLimiter {
	return &AttemptLimiter{
		prefix: prefix,
		limit:  int64(limit),
		window: window,
	}
}

// Allow records one attempt for the key and reports whether it is still
// within the window's budget. The first attempt of a window sets the TTL.
func (l *AttemptLimiter) Allow(ctx context.Context, key string) (bool, error) {
	counterKey := fmt.Sprintf("%s:%s", l.prefix, key)

	count, err := incrCounter(ctx, counterKey)
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := expireCounter(ctx, counterKey, l.window); err != nil {
			return false, err
		}
	}

	return count <= l.limit, nil
}

// Reset clears the counter for a key (used after a successful verification)
func (l *AttemptLimiter) Reset(ctx context.Context, key string) error {
	return Del(ctx, fmt.Sprintf("%s:%s", l.prefix, key))
}
