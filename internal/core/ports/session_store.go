package ports

import (
	"context"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// SessionStore holds server-side session records keyed by an opaque handle
// delivered to the client as a cookie. Sessions expire after a fixed
// absolute lifetime independent of activity.
type SessionStore interface {
	Create(ctx context.Context, member domain.MemberSummary) (handle string, err error)
	// Resolve returns (nil, nil) when the handle is absent, expired or
	// unknown; callers treat "no session" as anonymous, not as a failure.
	Resolve(ctx context.Context, handle string) (*domain.MemberSummary, error)
	// Destroy invalidates the session. Idempotent.
	Destroy(ctx context.Context, handle string) error
}
