package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/maiunguwa377/caseflow/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware.
// An empty role means the middleware did not run on this route — a
// wiring bug, rejected as unauthenticated rather than panicking.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ := c.Get("user_id").(int64)
	return domain.Claims{UserID: userID, Role: role}, nil
}
