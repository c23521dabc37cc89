package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_AllowWithinLimit(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		result, err := store.Allow(ctx, "user-1:withdraw_submit", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed, "request %d should be allowed", i+1)
	}

	result, err := store.Allow(ctx, "user-1:withdraw_submit", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(0), result.Remaining)
}

func TestRateLimitStore_SeparateKeys(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	_, err := store.Allow(ctx, "user-1:reveal", 1, time.Minute)
	require.NoError(t, err)

	result, err := store.Allow(ctx, "user-2:reveal", 1, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed, "limits are scoped per key")
}

func TestRateLimitStore_WindowKeyExpires(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewRateLimitStore(client)
	ctx := context.Background()

	_, err := store.Allow(ctx, "user-1:withdraw_submit", 3, time.Minute)
	require.NoError(t, err)

	// The window key must carry a TTL, or it outlives its window forever.
	keys := s.Keys()
	require.Len(t, keys, 1)
	assert.Greater(t, s.TTL(keys[0]), time.Duration(0))

	s.FastForward(2 * time.Minute)
	assert.False(t, s.Exists(keys[0]))
}
