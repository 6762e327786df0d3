package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

func newTestRepo(t *testing.T, ttl time.Duration) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionRepository(client, ttl), mr
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t, time.Hour)
	s := domain.NewWidgetSession("sess-1", time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))
	s.Input.Destination = "Ibadan"

	if err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, s); err == nil {
		t.Fatalf("duplicate id must be rejected")
	}
	if ttl := mr.TTL(keyPrefix + "sess-1"); ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %s", ttl)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Input.Destination != "Ibadan" || got.Stage != domain.StageDetails {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSessionRepository_GetMissing(t *testing.T) {
	repo, _ := newTestRepo(t, time.Hour)
	if _, err := repo.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionRepository_SaveRefreshesTTL(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t, time.Hour)
	s := domain.NewWidgetSession("sess-1", time.Now())
	_ = repo.Create(ctx, s)

	mr.FastForward(50 * time.Minute)
	s.Stage = domain.StageDispatch
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ttl := mr.TTL(keyPrefix + "sess-1"); ttl != time.Hour {
		t.Fatalf("save should reset ttl to 1h, got %s", ttl)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil || got.Stage != domain.StageDispatch {
		t.Fatalf("unexpected get after save: %+v, %v", got, err)
	}
}

func TestSessionRepository_SaveDoesNotResurrect(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t, time.Hour)
	s := domain.NewWidgetSession("sess-1", time.Now())
	_ = repo.Create(ctx, s)

	mr.FastForward(2 * time.Hour)
	if err := repo.Save(ctx, s); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if mr.Exists(keyPrefix + "sess-1") {
		t.Fatalf("expired session was recreated")
	}
}

func TestSessionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t, time.Hour)
	_ = repo.Create(ctx, domain.NewWidgetSession("sess-1", time.Now()))

	if err := repo.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Get(ctx, "sess-1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := repo.Save(ctx, domain.NewWidgetSession("sess-1", time.Now())); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("save after delete: expected ErrSessionNotFound, got %v", err)
	}
}
