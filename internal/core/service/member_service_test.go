package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

func newMemberFixture() (*MemberService, *stubMemberRepo, *stubPerfumeRepo, *stubBrandRepo) {
	members := newStubMemberRepo()
	perfumes := newStubPerfumeRepo()
	brands := newStubBrandRepo()
	svc := NewMemberService(members, perfumes, brands, NewGuard(), zerolog.Nop())
	return svc, members, perfumes, brands
}

func seedMember(t *testing.T, members *stubMemberRepo, email, password string, admin bool) *domain.Member {
	t.Helper()
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	created, err := members.Create(context.Background(), &domain.Member{
		Email:        email,
		PasswordHash: hash,
		Name:         "Member " + email,
		IsAdmin:      admin,
	})
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return created
}

func TestMemberService_List(t *testing.T) {
	svc, members, _, _ := newMemberFixture()
	ctx := context.Background()

	member := seedMember(t, members, "ana@example.com", "pass1234", false)
	admin := seedMember(t, members, "root@example.com", "pass1234", true)

	if _, err := svc.List(ctx, domain.Principal{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous list: expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.List(ctx, domain.Principal{ID: member.ID}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("member list: expected ErrForbidden, got %v", err)
	}

	all, err := svc.List(ctx, domain.Principal{ID: admin.ID, IsAdmin: true})
	if err != nil {
		t.Fatalf("admin list returned error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 members, got %d", len(all))
	}
}

func TestMemberService_UpdateProfile(t *testing.T) {
	svc, members, _, _ := newMemberFixture()
	ctx := context.Background()

	member := seedMember(t, members, "ana@example.com", "pass1234", false)
	other := seedMember(t, members, "bea@example.com", "pass1234", false)
	admin := seedMember(t, members, "root@example.com", "pass1234", true)

	update := ports.MemberUpdate{Name: "Ana Updated", YearOfBirth: 1991, Gender: true}

	updated, err := svc.UpdateProfile(ctx, domain.Principal{ID: member.ID}, member.ID, update)
	if err != nil {
		t.Fatalf("self update returned error: %v", err)
	}
	if updated.Name != "Ana Updated" || updated.YearOfBirth != 1991 {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := svc.UpdateProfile(ctx, domain.Principal{ID: other.ID}, member.ID, update); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("cross-member update: expected ErrForbidden, got %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, domain.Principal{ID: admin.ID, IsAdmin: true}, member.ID, update); err != nil {
		t.Fatalf("admin update returned error: %v", err)
	}

	if _, err := svc.UpdateProfile(ctx, domain.Principal{ID: member.ID}, member.ID, ports.MemberUpdate{}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("empty name: expected ErrInvalidInput, got %v", err)
	}
}

func TestMemberService_ChangePassword(t *testing.T) {
	svc, members, _, _ := newMemberFixture()
	ctx := context.Background()

	member := seedMember(t, members, "ana@example.com", "old-pass1", false)
	caller := domain.Principal{ID: member.ID}

	if err := svc.ChangePassword(ctx, caller, "old-pass1", "new-pass1"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	stored, err := members.FindByID(ctx, member.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if !VerifyPassword("new-pass1", stored.PasswordHash) {
		t.Fatal("new password does not verify")
	}
	if VerifyPassword("old-pass1", stored.PasswordHash) {
		t.Fatal("old password still verifies")
	}
}

func TestMemberService_ChangePassword_WrongCurrent(t *testing.T) {
	svc, members, _, _ := newMemberFixture()
	ctx := context.Background()

	member := seedMember(t, members, "ana@example.com", "old-pass1", false)
	before, _ := members.FindByID(ctx, member.ID)

	err := svc.ChangePassword(ctx, domain.Principal{ID: member.ID}, "not-the-password", "new-pass1")
	if !errors.Is(err, domain.ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}

	after, _ := members.FindByID(ctx, member.ID)
	if after.PasswordHash != before.PasswordHash {
		t.Fatal("hash changed despite wrong current password")
	}
}

func TestMemberService_ChangePassword_Anonymous(t *testing.T) {
	svc, _, _, _ := newMemberFixture()
	if err := svc.ChangePassword(context.Background(), domain.Principal{}, "a", "b"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestMemberService_MyReviews(t *testing.T) {
	svc, members, perfumes, brands := newMemberFixture()
	ctx := context.Background()

	member := seedMember(t, members, "ana@example.com", "pass1234", false)

	brand, err := brands.Create(ctx, &domain.Brand{Name: "Chanel"})
	if err != nil {
		t.Fatalf("create brand: %v", err)
	}
	perfume, err := perfumes.Create(ctx, &domain.Perfume{Name: "No. 5", BrandID: brand.ID})
	if err != nil {
		t.Fatalf("create perfume: %v", err)
	}
	unreviewed, err := perfumes.Create(ctx, &domain.Perfume{Name: "Allure", BrandID: brand.ID})
	if err != nil {
		t.Fatalf("create perfume: %v", err)
	}
	_ = unreviewed

	review := domain.Review{Rating: 5, Content: "classic", AuthorID: member.ID, CreatedAt: time.Now().UTC()}
	if err := perfumes.AppendReview(ctx, perfume.ID, review); err != nil {
		t.Fatalf("AppendReview: %v", err)
	}

	mine, err := svc.MyReviews(ctx, domain.Principal{ID: member.ID})
	if err != nil {
		t.Fatalf("MyReviews returned error: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 review, got %d", len(mine))
	}
	if mine[0].PerfumeName != "No. 5" || mine[0].BrandName != "Chanel" || mine[0].Rating != 5 {
		t.Fatalf("unexpected review projection: %+v", mine[0])
	}

	if _, err := svc.MyReviews(ctx, domain.Principal{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous MyReviews: expected ErrUnauthorized, got %v", err)
	}
}
