package ports

import (
	"context"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// BrandService defines brand use cases. Listing is public; mutations
// require the admin role. Deleting a brand still referenced by perfumes
// fails with domain.ErrBrandInUse.
type BrandService interface {
	List(ctx context.Context) ([]*domain.Brand, error)
	Create(ctx context.Context, caller domain.Principal, name string) (*domain.Brand, error)
	Update(ctx context.Context, caller domain.Principal, id string, name string) (*domain.Brand, error)
	Delete(ctx context.Context, caller domain.Principal, id string) error
}
