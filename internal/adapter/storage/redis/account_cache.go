package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"payout-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// AccountCache implements ports.AccountSnapshotCache using Redis. There
// is exactly one cached copy per user; every mutation path calls
// Invalidate instead of overwriting it in place, so a stale snapshot can
// only ever be replaced by a fresh upstream fetch.
type AccountCache struct {
	client *goredis.Client
	prefix string
}

// NewAccountCache creates a Redis-backed payout account snapshot cache.
func NewAccountCache(client *goredis.Client) *AccountCache {
	return &AccountCache{
		client: client,
		prefix: "payout:account:",
	}
}

// cachedAccount distinguishes "no account configured" (a valid cached
// state) from a cache miss.
type cachedAccount struct {
	Account *domain.PayoutAccount `json:"account"`
}

// Get returns (nil, false, nil) on a miss; a hit may carry a nil account.
func (c *AccountCache) Get(ctx context.Context, userID string) (*domain.PayoutAccount, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+userID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis account get: %w", err)
	}

	var entry cachedAccount
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false, fmt.Errorf("unmarshal account snapshot: %w", err)
	}
	return entry.Account, true, nil
}

// Set stores the snapshot (account may be nil for "none configured").
func (c *AccountCache) Set(ctx context.Context, userID string, account *domain.PayoutAccount, ttl time.Duration) error {
	raw, err := json.Marshal(cachedAccount{Account: account})
	if err != nil {
		return fmt.Errorf("marshal account snapshot: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+userID, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis account set: %w", err)
	}
	return nil
}

// Invalidate drops the snapshot.
func (c *AccountCache) Invalidate(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, c.prefix+userID).Err(); err != nil {
		return fmt.Errorf("redis account invalidate: %w", err)
	}
	return nil
}
