package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/pkg/config"
)

// setupRedis connects to a local Redis or skips the test.
func setupRedis(t *testing.T) *Client {
	t.Helper()

	client, err := NewClient(&config.RedisConfig{URL: "redis://localhost:6379/15"})
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestFixedWindowLimiter_Allow(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	limiter := NewFixedWindowLimiter(client, 3, time.Minute)
	fixed := time.Date(2024, 1, 1, 12, 0, 10, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	key := fmt.Sprintf("test-%d", time.Now().UnixNano())
	t.Cleanup(func() {
		_ = client.Del(ctx, fmt.Sprintf("%s:%s:%d", rateLimitKeyPrefix, key, fixed.Truncate(time.Minute).UnixMilli()))
	})

	for i := 1; i <= 3; i++ {
		result, err := limiter.Allow(ctx, key)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d", i)
		assert.Equal(t, 3-i, result.Remaining)
	}

	result, err := limiter.Allow(ctx, key)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
	assert.Equal(t, 50*time.Second, result.RetryAfter)
}

func TestFixedWindowLimiter_KeysAreIndependent(t *testing.T) {
	client := setupRedis(t)
	ctx := context.Background()

	limiter := NewFixedWindowLimiter(client, 1, time.Minute)
	suffix := time.Now().UnixNano()

	first, err := limiter.Allow(ctx, fmt.Sprintf("a-%d", suffix))
	require.NoError(t, err)
	second, err := limiter.Allow(ctx, fmt.Sprintf("b-%d", suffix))
	require.NoError(t, err)

	assert.True(t, first.Allowed)
	assert.True(t, second.Allowed)
}
