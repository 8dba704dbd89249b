package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

const (
	sessionPrefix     = "session:"
	defaultSessionTTL = 24 * time.Hour
)

// SessionStore keeps server-side session records in Redis, keyed by an
// opaque uuid handle. Records expire after a fixed absolute lifetime
// independent of activity.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// A non-positive ttl falls back to 24 hours.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Create(ctx context.Context, member domain.MemberSummary) (string, error) {
	payload, err := json.Marshal(member)
	if err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}

	handle := uuid.NewString()
	if err := s.client.Set(ctx, sessionPrefix+handle, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session create: %w", err)
	}
	return handle, nil
}

// Resolve returns (nil, nil) for absent, expired or unknown handles;
// callers treat a missing session as anonymous.
func (s *SessionStore) Resolve(ctx context.Context, handle string) (*domain.MemberSummary, error) {
	if handle == "" {
		return nil, nil
	}

	payload, err := s.client.Get(ctx, sessionPrefix+handle).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("session resolve: %w", err)
	}

	var member domain.MemberSummary
	if err := json.Unmarshal(payload, &member); err != nil {
		// A corrupt record is unusable; treat it as no session.
		return nil, nil
	}
	return &member, nil
}

// Destroy invalidates the session. Deleting an unknown handle is not an
// error.
func (s *SessionStore) Destroy(ctx context.Context, handle string) error {
	if handle == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionPrefix+handle).Err(); err != nil {
		return fmt.Errorf("session destroy: %w", err)
	}
	return nil
}
