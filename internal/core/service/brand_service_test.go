package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

func newBrandFixture() (*BrandService, *stubBrandRepo, *stubPerfumeRepo) {
	brands := newStubBrandRepo()
	perfumes := newStubPerfumeRepo()
	svc := NewBrandService(brands, perfumes, NewGuard(), zerolog.Nop())
	return svc, brands, perfumes
}

var testAdmin = domain.Principal{ID: "admin_1", IsAdmin: true}

func TestBrandService_Create(t *testing.T) {
	svc, _, _ := newBrandFixture()
	ctx := context.Background()

	brand, err := svc.Create(ctx, testAdmin, "Dior")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if brand.ID == "" || brand.Name != "Dior" {
		t.Fatalf("unexpected brand: %+v", brand)
	}

	if _, err := svc.Create(ctx, domain.Principal{ID: "member_1"}, "Dior"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-admin create: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Create(ctx, testAdmin, "   "); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("blank name: expected ErrInvalidInput, got %v", err)
	}
}

func TestBrandService_Update(t *testing.T) {
	svc, _, _ := newBrandFixture()
	ctx := context.Background()

	brand, err := svc.Create(ctx, testAdmin, "Dior")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	updated, err := svc.Update(ctx, testAdmin, brand.ID, "Christian Dior")
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "Christian Dior" {
		t.Fatalf("name not updated: %+v", updated)
	}

	if _, err := svc.Update(ctx, testAdmin, "missing", "X"); !errors.Is(err, domain.ErrBrandNotFound) {
		t.Fatalf("expected ErrBrandNotFound, got %v", err)
	}
}

func TestBrandService_Delete(t *testing.T) {
	svc, brands, perfumes := newBrandFixture()
	ctx := context.Background()

	brand, err := svc.Create(ctx, testAdmin, "Dior")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Delete(ctx, domain.Principal{ID: "member_1"}, brand.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-admin delete: expected ErrForbidden, got %v", err)
	}

	if _, err := perfumes.Create(ctx, &domain.Perfume{Name: "Sauvage", BrandID: brand.ID}); err != nil {
		t.Fatalf("create perfume: %v", err)
	}
	if err := svc.Delete(ctx, testAdmin, brand.ID); !errors.Is(err, domain.ErrBrandInUse) {
		t.Fatalf("referenced brand delete: expected ErrBrandInUse, got %v", err)
	}

	empty, err := svc.Create(ctx, testAdmin, "Guerlain")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if err := svc.Delete(ctx, testAdmin, empty.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, err := brands.FindByID(ctx, empty.ID); !errors.Is(err, domain.ErrBrandNotFound) {
		t.Fatalf("brand still present after delete: %v", err)
	}

	if err := svc.Delete(ctx, testAdmin, "missing"); !errors.Is(err, domain.ErrBrandNotFound) {
		t.Fatalf("expected ErrBrandNotFound, got %v", err)
	}
}
