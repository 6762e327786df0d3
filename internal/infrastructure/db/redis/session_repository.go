package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
)

const keyPrefix = "dispatch:session:"

// SessionRepository stores widget sessions as JSON values with a TTL.
// Key format: dispatch:session:<session_id>
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates a SessionRepository wrapping the given Redis client.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

// Create stores a new session. It fails if the id is already in use.
func (r *SessionRepository) Create(ctx context.Context, s *domain.WidgetSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	ok, err := r.client.SetNX(ctx, r.key(s.ID), raw, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	if !ok {
		return fmt.Errorf("create session: id %q already in use", s.ID)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.WidgetSession, error) {
	raw, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.WidgetSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &s, nil
}

// Save overwrites a live session and resets its TTL. A session that expired
// or was deleted since it was read is not recreated.
func (r *SessionRepository) Save(ctx context.Context, s *domain.WidgetSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	ok, err := r.client.SetXX(ctx, r.key(s.ID), raw, r.ttl).Result()
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) key(id string) string {
	return keyPrefix + id
}
