package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestIPRateLimiter_Burst(t *testing.T) {
	l := NewIPRateLimiter(1, 2)
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	if !l.Allow("1.1.1.1") || !l.Allow("1.1.1.1") {
		t.Fatalf("burst of 2 should be allowed")
	}
	if l.Allow("1.1.1.1") {
		t.Fatalf("third request should be limited")
	}
	if !l.Allow("2.2.2.2") {
		t.Fatalf("other IPs have their own bucket")
	}

	now = now.Add(time.Second)
	if !l.Allow("1.1.1.1") {
		t.Fatalf("bucket should refill after 1s")
	}
}

func TestIPRateLimiter_Cleanup(t *testing.T) {
	l := NewIPRateLimiter(1, 1)
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("1.1.1.1")
	now = now.Add(visitorIdle + time.Second)
	l.Allow("2.2.2.2")
	l.Cleanup()

	if _, ok := l.visitors["1.1.1.1"]; ok {
		t.Errorf("idle visitor should be removed")
	}
	if _, ok := l.visitors["2.2.2.2"]; !ok {
		t.Errorf("active visitor should be kept")
	}
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	e := echo.New()
	l := NewIPRateLimiter(0.001, 1)
	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	mw := l.Middleware()(next)

	newCtx := func() echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		return e.NewContext(req, httptest.NewRecorder())
	}

	if err := mw(newCtx()); err != nil {
		t.Fatalf("first request: %v", err)
	}
	err := mw(newCtx())
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}
