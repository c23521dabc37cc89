package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SubmitLock implements ports.SubmitLock using Redis SET NX. It keeps at
// most one mutating call in flight per key; the TTL is the safety net if
// a holder dies without releasing.
type SubmitLock struct {
	client *goredis.Client
	prefix string
}

// NewSubmitLock creates a Redis-backed single-flight lock.
func NewSubmitLock(client *goredis.Client) *SubmitLock {
	return &SubmitLock{
		client: client,
		prefix: "submit:lock:",
	}
}

// Acquire atomically takes the lock. Returns true if the lock was taken,
// false if another submission holds it.
func (s *SubmitLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	result, err := s.client.SetArgs(ctx, s.prefix+key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists: a submission is in flight
			return false, nil
		}
		return false, fmt.Errorf("redis submit lock: %w", err)
	}
	return result == "OK", nil
}

// Release frees the lock.
func (s *SubmitLock) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis submit unlock: %w", err)
	}
	return nil
}
