package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"mnsreestr/cmd/internal/utils"
)

// NewRequestLogger logs one line per request and propagates the request id
// (set by echo's RequestID middleware) into the request context.
func NewRequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			id := c.Response().Header().Get(echo.HeaderXRequestID)
			c.SetRequest(req.WithContext(utils.WithRequestID(req.Context(), id)))

			if err := next(c); err != nil {
				c.Error(err)
			}

			log.Infof("[%s] %s %s %d %s", id, req.Method, req.URL.Path, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
