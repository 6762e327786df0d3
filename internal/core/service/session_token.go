package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

// SessionTokens signs HS256 bearer tokens that bind a client to one widget
// session.
type SessionTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionTokens(secret string, ttl time.Duration) *SessionTokens {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &SessionTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of issued tokens, also used for session expiry.
func (t *SessionTokens) TTL() time.Duration { return t.ttl }

func (t *SessionTokens) Issue(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("issue token: empty session id")
	}
	now := t.now()
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"iat":        now.Unix(),
		"exp":        now.Add(t.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

func (t *SessionTokens) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidSessionToken
	}

	sessionID, _ := claims["session_id"].(string)
	if sessionID == "" {
		return "", domain.ErrInvalidSessionToken
	}
	return sessionID, nil
}
