package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
)

// TokenVerifier is the slice of the token service the guard needs.
type TokenVerifier interface {
	Verify(token string) (domain.Claims, error)
}

// Auth extracts the bearer token, verifies it, and injects the resolved
// claims into the request context. A missing or non-bearer header is
// rejected as unauthenticated (401); a token that fails verification is
// rejected as invalid credentials (403), a distinct outcome. The guard
// never touches the data store.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access Denied")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Invalid Token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
