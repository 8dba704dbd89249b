package ports

import (
	"context"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// PerfumeInput carries all fields for creating or replacing a perfume.
type PerfumeInput struct {
	Name           string
	URI            string
	Price          float64
	Concentration  string
	Description    string
	Ingredients    string
	Volume         int
	TargetAudience string
	BrandID        string
}

// PerfumeService defines catalog use cases. Reads are public; mutations
// require the admin role.
type PerfumeService interface {
	List(ctx context.Context) ([]*domain.Perfume, error)
	Get(ctx context.Context, id string) (*domain.Perfume, error)
	Search(ctx context.Context, q string) ([]*domain.Perfume, error)
	FilterByBrand(ctx context.Context, brandName string) ([]*domain.Perfume, error)
	Create(ctx context.Context, caller domain.Principal, input PerfumeInput) (*domain.Perfume, error)
	Update(ctx context.Context, caller domain.Principal, id string, input PerfumeInput) (*domain.Perfume, error)
	Delete(ctx context.Context, caller domain.Principal, id string) error
}

// ReviewService enforces the one-review-per-member-per-perfume invariant.
type ReviewService interface {
	// Submit appends a review to the perfume on behalf of the caller.
	// Fails with domain.ErrPerfumeNotFound, domain.ErrInvalidReview or
	// domain.ErrDuplicateReview; no partial mutation occurs on failure.
	Submit(ctx context.Context, caller domain.Principal, perfumeID string, rating int, content string) (*domain.Review, error)
}
