package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
	"github.com/perfumehub/catalog-system/internal/core/service"
)

// SessionCookie is the name of the cookie carrying the session handle on
// the page-rendering surface.
const SessionCookie = "session_id"

// principalKey is the echo context key holding the resolved principal.
const principalKey = "principal"

// TokenVerifier verifies a bearer token and returns the embedded member id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticate resolves a principal from either a bearer token or a session
// cookie and stores it in the request context. An unresolvable credential
// leaves the request anonymous; rejecting anonymous callers is the job of
// RequireAuth, so public routes can share this middleware.
//
// Token verification is pure, so the member is re-read from storage to
// confirm it still exists and to pick up the current admin flag.
func Authenticate(tokens TokenVerifier, sessions ports.SessionStore, members ports.MemberRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			if p, ok := resolveBearer(ctx, c, tokens, members); ok {
				c.Set(principalKey, p)
				return next(c)
			}
			if p, ok := resolveSession(ctx, c, sessions); ok {
				c.Set(principalKey, p)
			}
			return next(c)
		}
	}
}

func resolveBearer(ctx context.Context, c echo.Context, tokens TokenVerifier, members ports.MemberRepository) (domain.Principal, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return domain.Principal{}, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return domain.Principal{}, false
	}

	memberID, err := tokens.Verify(parts[1])
	if err != nil {
		return domain.Principal{}, false
	}

	member, err := members.FindByID(ctx, memberID)
	if err != nil {
		return domain.Principal{}, false
	}
	return domain.Principal{ID: member.ID, IsAdmin: member.IsAdmin}, true
}

func resolveSession(ctx context.Context, c echo.Context, sessions ports.SessionStore) (domain.Principal, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return domain.Principal{}, false
	}

	summary, err := sessions.Resolve(ctx, cookie.Value)
	if err != nil || summary == nil {
		return domain.Principal{}, false
	}
	return domain.Principal{ID: summary.ID, IsAdmin: summary.IsAdmin}, true
}

// RequireAuth rejects anonymous requests through the authorization guard;
// the central error handler maps ErrUnauthorized to 401. Runs after
// Authenticate.
func RequireAuth(guard service.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if err := guard.RequireAuthenticated(PrincipalFrom(c)); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal resolved by Authenticate, or the zero
// Principal for anonymous requests.
func PrincipalFrom(c echo.Context) domain.Principal {
	p, _ := c.Get(principalKey).(domain.Principal)
	return p
}

// SetPrincipal injects a principal directly. Intended for tests.
func SetPrincipal(c echo.Context, p domain.Principal) {
	c.Set(principalKey, p)
}
