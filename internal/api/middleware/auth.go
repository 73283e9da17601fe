package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// AdminAuth validates the admin bearer token on back-office routes.
// Uses constant-time comparison to prevent timing attacks.
func AdminAuth(adminToken string, logger *slog.Logger) echo.MiddlewareFunc {
	if adminToken == "" && logger != nil {
		logger.Warn("ADMIN_TOKEN not set - admin API is UNSECURED")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Skip if token not configured (development mode)
			if adminToken == "" {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				// WebSocket clients cannot set headers from the browser;
				// accept the token as a query parameter there.
				if token := c.QueryParam("token"); token != "" {
					authHeader = "Bearer " + token
				}
			}

			if authHeader == "" {
				if logger != nil {
					logger.Warn("missing authorization header",
						slog.String("ip", c.RealIP()),
						slog.String("path", c.Path()))
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"error": "missing authorization header",
					"code":  "UNAUTHORIZED",
				})
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			token = strings.TrimSpace(token)

			if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				if logger != nil {
					logger.Warn("invalid admin token attempt",
						slog.String("ip", c.RealIP()),
						slog.String("path", c.Path()))
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"error": "invalid admin token",
					"code":  "UNAUTHORIZED",
				})
			}

			return next(c)
		}
	}
}
