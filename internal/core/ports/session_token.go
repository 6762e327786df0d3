package ports

// SessionTokenIssuer signs and verifies the bearer token bound to a session.
type SessionTokenIssuer interface {
	Issue(sessionID string) (string, error)
	// Verify returns the session id carried by token, or
	// domain.ErrInvalidSessionToken.
	Verify(token string) (string, error)
}
