package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitgrid/gym-system/internal/core/ports"
)

// ctxClaims extracts the auth claims injected by the Auth middleware. A
// non-empty role proves the middleware ran on this route.
func ctxClaims(c echo.Context) (ports.Claims, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return ports.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	claims := ports.Claims{Role: role}
	claims.UserID, _ = c.Get("user_id").(string)
	claims.Email, _ = c.Get("email").(string)
	claims.TokenID, _ = c.Get("token_id").(string)
	claims.ExpiresAt, _ = c.Get("token_exp").(time.Time)

	if claims.UserID == "" {
		return ports.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
	}
	return claims, nil
}
