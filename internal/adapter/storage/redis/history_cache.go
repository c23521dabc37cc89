package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"payout-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// HistoryCache implements ports.HistoryCache using Redis. It holds the
// last fetched withdrawal list snapshot per user; status filtering runs
// over this snapshot without refetching.
type HistoryCache struct {
	client *goredis.Client
	prefix string
}

// NewHistoryCache creates a Redis-backed withdrawal history cache.
func NewHistoryCache(client *goredis.Client) *HistoryCache {
	return &HistoryCache{
		client: client,
		prefix: "withdrawals:snapshot:",
	}
}

// Get returns (nil, false, nil) on a miss. An empty list is a valid hit.
func (c *HistoryCache) Get(ctx context.Context, userID string) ([]domain.WithdrawalRequest, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+userID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis history get: %w", err)
	}

	var items []domain.WithdrawalRequest
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, fmt.Errorf("unmarshal history snapshot: %w", err)
	}
	return items, true, nil
}

// Set stores the snapshot.
func (c *HistoryCache) Set(ctx context.Context, userID string, items []domain.WithdrawalRequest, ttl time.Duration) error {
	if items == nil {
		items = []domain.WithdrawalRequest{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal history snapshot: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+userID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis history set: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot so the next read refetches.
func (c *HistoryCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, c.prefix+userID).Err(); err != nil {
		return fmt.Errorf("redis history invalidate: %w", err)
	}
	return nil
}
