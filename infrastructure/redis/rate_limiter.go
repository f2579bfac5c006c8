package redis

import (
	"context"
	"fmt"
	"time"

	"task-manager/domain/ports"
)

const rateLimitKeyPrefix = "ratelimit"

// FixedWindowLimiter counts requests per key in fixed windows aligned to
// the Unix epoch. Each window has its own key, which expires with the window.
type FixedWindowLimiter struct {
	client *Client
	limit  int
	window time.Duration
	now    func() time.Time
}

// NewFixedWindowLimiter allows limit requests per key in each window.
func NewFixedWindowLimiter(client *Client, limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		client: client,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Allow counts one request for key in the current window.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (*ports.RateLimitResult, error) {
	now := l.now()
	windowStart := now.Truncate(l.window)
	windowEnd := windowStart.Add(l.window)
	redisKey := fmt.Sprintf("%s:%s:%d", rateLimitKeyPrefix, key, windowStart.UnixMilli())

	pipe := l.client.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.PExpire(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("rate limit pipeline: %w", err)
	}

	count := int(incr.Val())
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}

	result := &ports.RateLimitResult{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
	}
	if !result.Allowed {
		result.RetryAfter = windowEnd.Sub(now)
	}
	return result, nil
}

var _ ports.RateLimiter = (*FixedWindowLimiter)(nil)
