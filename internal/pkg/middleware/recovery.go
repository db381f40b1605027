package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware recovers from panics in handlers, logs the stack trace
// and returns a JSON 500 instead of dropping the connection
func RecoveryMiddleware(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					requestID := c.Response().Header().Get("X-Request-ID")

					logger.WithFields(logrus.Fields{
						"panic_value": r,
						"stack_trace": string(debug.Stack()),
						"method":      c.Request().Method,
						"path":        c.Request().URL.Path,
						"client_ip":   c.RealIP(),
						"request_id":  requestID,
					}).Error("Panic recovered during request processing")

					if !c.Response().Committed {
						_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
							"error":      "Internal Server Error",
							"request_id": requestID,
						})
					}
				}
			}()

			return next(c)
		}
	}
}
