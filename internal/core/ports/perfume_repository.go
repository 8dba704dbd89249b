package ports

import (
	"context"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// PerfumeRepository defines persistence operations for perfumes and their
// embedded review lists.
type PerfumeRepository interface {
	Create(ctx context.Context, p *domain.Perfume) (*domain.Perfume, error)
	FindByID(ctx context.Context, id string) (*domain.Perfume, error)
	// List returns all perfumes. When brandID is non-empty the result is
	// restricted to that brand.
	List(ctx context.Context, brandID string) ([]*domain.Perfume, error)
	// Search matches perfume names case-insensitively against q.
	Search(ctx context.Context, q string) ([]*domain.Perfume, error)
	Update(ctx context.Context, id string, p *domain.Perfume) (*domain.Perfume, error)
	Delete(ctx context.Context, id string) error
	CountByBrand(ctx context.Context, brandID string) (int64, error)
	// FindReviewedBy returns perfumes containing a review authored by memberID.
	FindReviewedBy(ctx context.Context, memberID string) ([]*domain.Perfume, error)

	// AppendReview appends review to the perfume's embedded list as a single
	// atomic document update conditioned on no existing review by the same
	// author. Returns domain.ErrDuplicateReview when the author already
	// reviewed the perfume, domain.ErrPerfumeNotFound when the perfume does
	// not exist. Concurrent calls for the same (perfume, author) pair can
	// never both succeed.
	AppendReview(ctx context.Context, perfumeID string, review domain.Review) error
}
