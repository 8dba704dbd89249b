package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/perfumehub/catalog-system/internal/api/middleware"
	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// principal extracts the caller identity resolved by the Authenticate
// middleware. Anonymous callers yield the zero Principal; services run it
// through the guard, so handlers never inline role checks.
func principal(c echo.Context) domain.Principal {
	return middleware.PrincipalFrom(c)
}
