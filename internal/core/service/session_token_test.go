package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

func TestSessionTokens_RoundTrip(t *testing.T) {
	tokens := NewSessionTokens("secret", time.Hour)

	signed, err := tokens.Issue("sess-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	id, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id != "sess-1" {
		t.Fatalf("expected sess-1, got %s", id)
	}
}

func TestSessionTokens_Expired(t *testing.T) {
	tokens := NewSessionTokens("secret", time.Minute)
	issuedAt := time.Now()
	tokens.now = func() time.Time { return issuedAt }

	signed, err := tokens.Issue("sess-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tokens.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	if _, err := tokens.Verify(signed); !errors.Is(err, domain.ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
}

func TestSessionTokens_WrongSecret(t *testing.T) {
	signed, _ := NewSessionTokens("secret", time.Hour).Issue("sess-1")

	if _, err := NewSessionTokens("other", time.Hour).Verify(signed); !errors.Is(err, domain.ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
}

func TestSessionTokens_MissingSessionClaim(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewSessionTokens("secret", time.Hour).Verify(signed); !errors.Is(err, domain.ErrInvalidSessionToken) {
		t.Fatalf("expected ErrInvalidSessionToken, got %v", err)
	}
}

func TestSessionTokens_DefaultTTL(t *testing.T) {
	if got := NewSessionTokens("secret", 0).TTL(); got != 2*time.Hour {
		t.Fatalf("expected 2h default, got %s", got)
	}
}
