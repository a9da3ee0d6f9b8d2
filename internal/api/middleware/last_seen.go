package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/willsblog/microblog-api/internal/core/ports"
)

// LastSeen records activity for the authenticated user before the handler
// runs. Must be registered after Auth. Failures are logged and never fail
// the request.
func LastSeen(users ports.UserService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID, ok := c.Get("user_id").(int64); ok && userID != 0 {
				if err := users.TouchLastSeen(c.Request().Context(), userID); err != nil {
					log.Warn().Err(err).Int64("user_id", userID).Msg("failed to update last seen")
				}
			}
			return next(c)
		}
	}
}
