package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS allows the dashboard to call the proxy from any origin. Pre-flight
// OPTIONS requests are answered directly with an empty 200 body, the wire
// contract the dashboard was built against, so business handlers never see
// them.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowHeaders, echo.HeaderContentType)
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}
