package handler

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

// pathParam returns a decoded, trimmed path parameter. Echo routes on the
// already decoded URL.Path unless the request carried a RawPath, in which
// case params are still percent-encoded and get unescaped here once.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if c.Request().URL.RawPath != "" {
		if val, err := url.PathUnescape(raw); err == nil {
			raw = val
		}
	}
	return strings.TrimSpace(raw)
}
