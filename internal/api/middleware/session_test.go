package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubTokens struct {
	valid map[string]string
}

func (s stubTokens) Issue(id string) (string, error) { return "t-" + id, nil }

func (s stubTokens) Verify(token string) (string, error) {
	if id, ok := s.valid[token]; ok {
		return id, nil
	}
	return "", errors.New("bad token")
}

func runSessionAuth(t *testing.T, header string) (*httptest.ResponseRecorder, string, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	mw := SessionAuth(stubTokens{valid: map[string]string{"good": "sess-1"}}, "session_id")
	err := mw(func(c echo.Context) error {
		seen, _ = c.Get("session_id").(string)
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, seen, err
}

func TestSessionAuth_ValidToken(t *testing.T) {
	rec, seen, err := runSessionAuth(t, "Bearer good")
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if seen != "sess-1" {
		t.Fatalf("session id not injected, got %q", seen)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSessionAuth_Rejects(t *testing.T) {
	tests := map[string]string{
		"missing header": "",
		"wrong scheme":   "Basic good",
		"bad token":      "Bearer forged",
	}
	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			_, seen, err := runSessionAuth(t, header)
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
			if seen != "" {
				t.Errorf("next must not run")
			}
		})
	}
}
