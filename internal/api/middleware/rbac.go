package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/perfumehub/catalog-system/internal/core/service"
)

// RequireAdmin enforces the admin role by delegating to the authorization
// guard; the central error handler maps ErrUnauthorized/ErrForbidden to
// 401/403. Runs after Authenticate.
func RequireAdmin(guard service.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := guard.RequireAdmin(PrincipalFrom(c)); err != nil {
				return err
			}
			return next(c)
		}
	}
}
