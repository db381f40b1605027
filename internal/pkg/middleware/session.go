package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sessionbook/ledger/internal/pkg/session"
	"github.com/sessionbook/ledger/internal/utils"
)

// SessionContextKey is the echo context key holding the session token
const SessionContextKey = "session_id"

// RequireSession gates session-scoped routes. A request without the session
// cookie is rejected with 401; the gate never issues a session itself, that
// is the create operation's privilege. The token is not checked against any
// store: possession is the whole credential.
func RequireSession(cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := session.FromRequest(c.Request(), cookieName)
			if !ok {
				return utils.UnauthorizedResponse(c, "Session cookie is required")
			}

			c.Set(SessionContextKey, token)
			return next(c)
		}
	}
}

// SessionFromContext returns the session token stored by RequireSession
func SessionFromContext(c echo.Context) string {
	if token, ok := c.Get(SessionContextKey).(string); ok {
		return token
	}
	return ""
}
