package ports

import (
	"context"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// MyReview is one of the caller's reviews joined with its perfume.
type MyReview struct {
	PerfumeName string `json:"perfume_name"`
	BrandName   string `json:"brand_name"`
	Rating      int    `json:"rating"`
	Content     string `json:"content"`
	CreatedAt   string `json:"created_at"`
}

// MemberService defines member account use cases. Every operation takes the
// caller's principal and enforces role/ownership through the guard before
// touching storage.
type MemberService interface {
	// List returns all members without password hashes. Admin only.
	List(ctx context.Context, caller domain.Principal) ([]*domain.Member, error)
	// UpdateProfile mutates the target member's profile. Self or admin.
	UpdateProfile(ctx context.Context, caller domain.Principal, targetID string, update MemberUpdate) (*domain.Member, error)
	// ChangePassword replaces the caller's own password after verifying the
	// current one. The stored hash is untouched on failure.
	ChangePassword(ctx context.Context, caller domain.Principal, currentPassword, newPassword string) error
	// MyReviews returns the caller's reviews across all perfumes.
	MyReviews(ctx context.Context, caller domain.Principal) ([]MyReview, error)
}
