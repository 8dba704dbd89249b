package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

// BrandService implements brand use cases. Deletion is refused while any
// perfume still references the brand.
type BrandService struct {
	brands   ports.BrandRepository
	perfumes ports.PerfumeRepository
	guard    Guard
	log      zerolog.Logger
}

func NewBrandService(brands ports.BrandRepository, perfumes ports.PerfumeRepository, guard Guard, log zerolog.Logger) *BrandService {
	return &BrandService{brands: brands, perfumes: perfumes, guard: guard, log: log}
}

func (s *BrandService) List(ctx context.Context) ([]*domain.Brand, error) {
	return s.brands.List(ctx)
}

func (s *BrandService) Create(ctx context.Context, caller domain.Principal, name string) (*domain.Brand, error) {
	if err := s.guard.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	created, err := s.brands.Create(ctx, &domain.Brand{Name: name, CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("brand_id", created.ID).Str("caller_id", caller.ID).Msg("brand created")
	return created, nil
}

func (s *BrandService) Update(ctx context.Context, caller domain.Principal, id string, name string) (*domain.Brand, error) {
	if err := s.guard.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.brands.Update(ctx, id, name)
}

func (s *BrandService) Delete(ctx context.Context, caller domain.Principal, id string) error {
	if err := s.guard.RequireAdmin(caller); err != nil {
		return err
	}

	if _, err := s.brands.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.perfumes.CountByBrand(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrBrandInUse
	}

	if err := s.brands.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("brand_id", id).Str("caller_id", caller.ID).Msg("brand deleted")
	return nil
}
