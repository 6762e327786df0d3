// Package memory holds the in-process session store used when no Redis is
// configured. Sessions do not survive a restart.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
)

type entry struct {
	session   domain.WidgetSession
	expiresAt time.Time
}

// SessionRepository keeps sessions in a map guarded by a RWMutex. Values are
// copied in and out so callers never share state with the store.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]entry
	ttl      time.Duration
	now      func() time.Time
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *SessionRepository) Create(_ context.Context, s *domain.WidgetSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sessions[s.ID]; ok && r.now().Before(e.expiresAt) {
		return fmt.Errorf("create session: id %q already in use", s.ID)
	}
	r.sessions[s.ID] = entry{session: *s, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *SessionRepository) Get(_ context.Context, id string) (*domain.WidgetSession, error) {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || !r.now().Before(e.expiresAt) {
		return nil, domain.ErrSessionNotFound
	}
	s := e.session
	return &s, nil
}

// Save overwrites a live session and pushes its expiry out by the TTL.
func (r *SessionRepository) Save(_ context.Context, s *domain.WidgetSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[s.ID]; !ok || !r.now().Before(e.expiresAt) {
		return domain.ErrSessionNotFound
	}
	r.sessions[s.ID] = entry{session: *s, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

// Sweep drops expired sessions and returns how many were removed.
func (r *SessionRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, e := range r.sessions {
		if !now.Before(e.expiresAt) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is cancelled.
func (r *SessionRepository) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
