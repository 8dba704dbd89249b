package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

// MemberService implements member account use cases behind the guard.
type MemberService struct {
	members  ports.MemberRepository
	perfumes ports.PerfumeRepository
	brands   ports.BrandRepository
	guard    Guard
	log      zerolog.Logger
}

func NewMemberService(members ports.MemberRepository, perfumes ports.PerfumeRepository, brands ports.BrandRepository, guard Guard, log zerolog.Logger) *MemberService {
	return &MemberService{members: members, perfumes: perfumes, brands: brands, guard: guard, log: log}
}

func (s *MemberService) List(ctx context.Context, caller domain.Principal) ([]*domain.Member, error) {
	if err := s.guard.RequireAdmin(caller); err != nil {
		return nil, err
	}
	return s.members.List(ctx)
}

func (s *MemberService) UpdateProfile(ctx context.Context, caller domain.Principal, targetID string, update ports.MemberUpdate) (*domain.Member, error) {
	if err := s.guard.RequireSelfOrAdmin(caller, targetID); err != nil {
		return nil, err
	}
	if update.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	member, err := s.members.UpdateProfile(ctx, targetID, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("member_id", targetID).Str("caller_id", caller.ID).Msg("profile updated")
	return member, nil
}

func (s *MemberService) ChangePassword(ctx context.Context, caller domain.Principal, currentPassword, newPassword string) error {
	if err := s.guard.RequireAuthenticated(caller); err != nil {
		return err
	}
	if newPassword == "" {
		return domain.ErrInvalidInput
	}

	member, err := s.members.FindByID(ctx, caller.ID)
	if err != nil {
		return err
	}

	if !VerifyPassword(currentPassword, member.PasswordHash) {
		return domain.ErrWrongPassword
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}
	if err := s.members.UpdatePasswordHash(ctx, caller.ID, hash); err != nil {
		return err
	}

	s.log.Info().Str("member_id", caller.ID).Msg("password changed")
	return nil
}

func (s *MemberService) MyReviews(ctx context.Context, caller domain.Principal) ([]ports.MyReview, error) {
	if err := s.guard.RequireAuthenticated(caller); err != nil {
		return nil, err
	}

	perfumes, err := s.perfumes.FindReviewedBy(ctx, caller.ID)
	if err != nil {
		return nil, err
	}

	reviews := make([]ports.MyReview, 0, len(perfumes))
	for _, p := range perfumes {
		r := p.ReviewBy(caller.ID)
		if r == nil {
			continue
		}
		brandName := p.BrandName
		if brandName == "" {
			if b, err := s.brands.FindByID(ctx, p.BrandID); err == nil {
				brandName = b.Name
			}
		}
		reviews = append(reviews, ports.MyReview{
			PerfumeName: p.Name,
			BrandName:   brandName,
			Rating:      r.Rating,
			Content:     r.Content,
			CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return reviews, nil
}
