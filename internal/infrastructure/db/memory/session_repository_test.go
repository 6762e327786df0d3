package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

func newTestRepo(ttl time.Duration) (*SessionRepository, *time.Time) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	r := NewSessionRepository(ttl)
	r.now = func() time.Time { return now }
	return r, &now
}

func TestSessionRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	r, now := newTestRepo(time.Hour)
	s := domain.NewWidgetSession("sess-1", *now)

	if err := r.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := r.Create(ctx, s); err == nil {
		t.Fatalf("duplicate create should fail")
	}

	got, err := r.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Input.Destination = "Ibadan"

	again, _ := r.Get(ctx, "sess-1")
	if again.Input.Destination != "" {
		t.Fatalf("mutating a returned session must not change the store")
	}

	if err := r.Save(ctx, got); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, _ = r.Get(ctx, "sess-1")
	if again.Input.Destination != "Ibadan" {
		t.Fatalf("save not applied")
	}

	if err := r.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.Get(ctx, "sess-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepository_ExpiryAndRefresh(t *testing.T) {
	ctx := context.Background()
	r, now := newTestRepo(time.Hour)
	s := domain.NewWidgetSession("sess-1", *now)
	_ = r.Create(ctx, s)

	*now = now.Add(50 * time.Minute)
	if err := r.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	*now = now.Add(50 * time.Minute)
	if _, err := r.Get(ctx, "sess-1"); err != nil {
		t.Fatalf("save should have refreshed the expiry: %v", err)
	}

	*now = now.Add(11 * time.Minute)
	if _, err := r.Get(ctx, "sess-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
	if n := r.Sweep(); n != 1 {
		t.Fatalf("expected 1 swept session, got %d", n)
	}
}

func TestSessionRepository_SaveDoesNotResurrect(t *testing.T) {
	ctx := context.Background()
	r, now := newTestRepo(time.Hour)
	s := domain.NewWidgetSession("sess-1", *now)

	if err := r.Save(ctx, s); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("save before create: expected ErrSessionNotFound, got %v", err)
	}

	_ = r.Create(ctx, s)
	*now = now.Add(2 * time.Hour)
	if err := r.Save(ctx, s); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("save after expiry: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := r.Get(ctx, "sess-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expired session came back: %v", err)
	}
}
