package ports

import (
	"context"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// MemberUpdate carries the mutable profile fields. Email and password are
// deliberately absent: email is immutable, password changes go through
// UpdatePasswordHash with a current-password proof.
type MemberUpdate struct {
	Name        string
	YearOfBirth int
	Gender      bool
}

// MemberRepository defines persistence operations for members.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) (*domain.Member, error)
	FindByID(ctx context.Context, id string) (*domain.Member, error)
	// FindByEmail matches the email key case-sensitively.
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	UpdateProfile(ctx context.Context, id string, update MemberUpdate) (*domain.Member, error)
	UpdatePasswordHash(ctx context.Context, id string, hash string) error
}
