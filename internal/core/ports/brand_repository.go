package ports

import (
	"context"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// BrandRepository defines persistence operations for brands.
type BrandRepository interface {
	Create(ctx context.Context, b *domain.Brand) (*domain.Brand, error)
	FindByID(ctx context.Context, id string) (*domain.Brand, error)
	List(ctx context.Context) ([]*domain.Brand, error)
	Update(ctx context.Context, id string, name string) (*domain.Brand, error)
	Delete(ctx context.Context, id string) error
}
