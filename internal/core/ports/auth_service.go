package ports

import (
	"context"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// RegisterInput carries the fields needed to create a member account.
type RegisterInput struct {
	Email       string
	Password    string
	Name        string
	YearOfBirth int
	Gender      bool
}

// AuthService implements registration and the two login modes.
type AuthService interface {
	// Register creates a member with a hashed password and returns it
	// together with a freshly issued bearer token.
	Register(ctx context.Context, input RegisterInput) (*domain.Member, string, error)
	// Login verifies credentials and returns the member plus a bearer token.
	Login(ctx context.Context, email, password string) (*domain.Member, string, error)
	// LoginSession verifies credentials and creates a server-side session,
	// returning the member summary and the opaque session handle.
	LoginSession(ctx context.Context, email, password string) (*domain.MemberSummary, string, error)
	// Logout destroys the session identified by handle. Idempotent.
	Logout(ctx context.Context, handle string) error
}
