package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/sessionbook/ledger/internal/utils"
)

const (
	// OperatorKeyHeader carries the operator credential for unscoped routes
	OperatorKeyHeader = "X-Operator-Key"
)

// RequireOperatorKey gates privileged routes that bypass session isolation.
// An unconfigured key disables the route entirely instead of leaving it open.
func RequireOperatorKey(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(OperatorKeyHeader)
			if provided == "" {
				return utils.UnauthorizedResponse(c, "Operator key is required")
			}

			if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				return utils.ForbiddenResponse(c, "Invalid operator key")
			}

			return next(c)
		}
	}
}
