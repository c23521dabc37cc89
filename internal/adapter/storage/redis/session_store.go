package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"payout-gateway/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.WizardSessionStore using Redis. Sessions
// are JSON blobs under a TTL; expiry is how abandoned wizards get cleaned
// up.
type SessionStore struct {
	client *goredis.Client
	prefix string
}

// NewSessionStore creates a Redis-backed wizard session store.
func NewSessionStore(client *goredis.Client) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "wizard:session:",
	}
}

// Get returns (nil, nil) when the session does not exist or expired.
func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*domain.WizardSession, error) {
	raw, err := s.client.Get(ctx, s.prefix+id.String()).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis session get: %w", err)
	}

	var session domain.WizardSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &session, nil
}

// Save stores the session, refreshing its TTL.
func (s *SessionStore) Save(ctx context.Context, session *domain.WizardSession, ttl time.Duration) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.prefix+session.ID.String(), raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis session save: %w", err)
	}
	return nil
}

// Delete removes the session.
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.prefix+id.String()).Err(); err != nil {
		return fmt.Errorf("redis session delete: %w", err)
	}
	return nil
}
