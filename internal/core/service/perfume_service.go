package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

// PerfumeService implements catalog use cases. Reads are public,
// mutations are admin-only.
type PerfumeService struct {
	perfumes ports.PerfumeRepository
	brands   ports.BrandRepository
	guard    Guard
	log      zerolog.Logger
}

func NewPerfumeService(perfumes ports.PerfumeRepository, brands ports.BrandRepository, guard Guard, log zerolog.Logger) *PerfumeService {
	return &PerfumeService{perfumes: perfumes, brands: brands, guard: guard, log: log}
}

func (s *PerfumeService) List(ctx context.Context) ([]*domain.Perfume, error) {
	perfumes, err := s.perfumes.List(ctx, "")
	if err != nil {
		return nil, err
	}
	s.fillBrandNames(ctx, perfumes)
	return perfumes, nil
}

func (s *PerfumeService) Get(ctx context.Context, id string) (*domain.Perfume, error) {
	p, err := s.perfumes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.fillBrandNames(ctx, []*domain.Perfume{p})
	return p, nil
}

func (s *PerfumeService) Search(ctx context.Context, q string) ([]*domain.Perfume, error) {
	if strings.TrimSpace(q) == "" {
		return nil, domain.ErrInvalidInput
	}
	perfumes, err := s.perfumes.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	s.fillBrandNames(ctx, perfumes)
	return perfumes, nil
}

func (s *PerfumeService) FilterByBrand(ctx context.Context, brandName string) ([]*domain.Perfume, error) {
	if strings.TrimSpace(brandName) == "" {
		return nil, domain.ErrInvalidInput
	}

	brands, err := s.brands.List(ctx)
	if err != nil {
		return nil, err
	}
	var brand *domain.Brand
	for _, b := range brands {
		if strings.EqualFold(b.Name, brandName) {
			brand = b
			break
		}
	}
	if brand == nil {
		return []*domain.Perfume{}, nil
	}

	perfumes, err := s.perfumes.List(ctx, brand.ID)
	if err != nil {
		return nil, err
	}
	for _, p := range perfumes {
		p.BrandName = brand.Name
	}
	return perfumes, nil
}

func (s *PerfumeService) Create(ctx context.Context, caller domain.Principal, input ports.PerfumeInput) (*domain.Perfume, error) {
	if err := s.guard.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := &domain.Perfume{
		Name:           input.Name,
		URI:            input.URI,
		Price:          input.Price,
		Concentration:  input.Concentration,
		Description:    input.Description,
		Ingredients:    input.Ingredients,
		Volume:         input.Volume,
		TargetAudience: input.TargetAudience,
		BrandID:        input.BrandID,
		Reviews:        []domain.Review{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.perfumes.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("perfume_id", created.ID).Str("caller_id", caller.ID).Msg("perfume created")
	return created, nil
}

func (s *PerfumeService) Update(ctx context.Context, caller domain.Principal, id string, input ports.PerfumeInput) (*domain.Perfume, error) {
	if err := s.guard.RequireAdmin(caller); err != nil {
		return nil, err
	}
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	updated, err := s.perfumes.Update(ctx, id, &domain.Perfume{
		Name:           input.Name,
		URI:            input.URI,
		Price:          input.Price,
		Concentration:  input.Concentration,
		Description:    input.Description,
		Ingredients:    input.Ingredients,
		Volume:         input.Volume,
		TargetAudience: input.TargetAudience,
		BrandID:        input.BrandID,
		UpdatedAt:      time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("perfume_id", id).Str("caller_id", caller.ID).Msg("perfume updated")
	return updated, nil
}

func (s *PerfumeService) Delete(ctx context.Context, caller domain.Principal, id string) error {
	if err := s.guard.RequireAdmin(caller); err != nil {
		return err
	}
	if err := s.perfumes.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("perfume_id", id).Str("caller_id", caller.ID).Msg("perfume deleted")
	return nil
}

func (s *PerfumeService) validateInput(ctx context.Context, input ports.PerfumeInput) error {
	if input.Name == "" || input.BrandID == "" {
		return domain.ErrInvalidInput
	}
	if _, err := s.brands.FindByID(ctx, input.BrandID); err != nil {
		if errors.Is(err, domain.ErrBrandNotFound) {
			return domain.ErrBrandNotFound
		}
		return err
	}
	return nil
}

// fillBrandNames resolves brand names for outward projections. Missing
// brands leave the name empty rather than failing the read.
func (s *PerfumeService) fillBrandNames(ctx context.Context, perfumes []*domain.Perfume) {
	cache := map[string]string{}
	for _, p := range perfumes {
		if name, ok := cache[p.BrandID]; ok {
			p.BrandName = name
			continue
		}
		b, err := s.brands.FindByID(ctx, p.BrandID)
		if err != nil {
			continue
		}
		cache[p.BrandID] = b.Name
		p.BrandName = b.Name
	}
}
