package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ContextKeySessionID is where the session middleware stores the verified
// session id.
const ContextKeySessionID = "session_id"

// ctxSessionID extracts the session id injected by the session middleware.
// An empty value means the middleware did not run; reject with 401.
func ctxSessionID(c echo.Context) (string, error) {
	id, _ := c.Get(ContextKeySessionID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return id, nil
}
