package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

// ReviewAuditor receives audit events for successfully submitted reviews.
type ReviewAuditor interface {
	Enqueue(event domain.ReviewEvent)
}

// ReviewService guarantees at most one review per (member, perfume) pair.
// The duplicate check and the append happen inside a single conditional
// document update in the repository, so two concurrent submissions for the
// same pair can never both succeed.
type ReviewService struct {
	perfumes ports.PerfumeRepository
	guard    Guard
	auditor  ReviewAuditor
	log      zerolog.Logger
}

func NewReviewService(perfumes ports.PerfumeRepository, guard Guard, auditor ReviewAuditor, log zerolog.Logger) *ReviewService {
	return &ReviewService{perfumes: perfumes, guard: guard, auditor: auditor, log: log}
}

func (s *ReviewService) Submit(ctx context.Context, caller domain.Principal, perfumeID string, rating int, content string) (*domain.Review, error) {
	if err := s.guard.RequireAuthenticated(caller); err != nil {
		return nil, err
	}
	if !domain.ValidRating(rating) || strings.TrimSpace(content) == "" {
		return nil, domain.ErrInvalidReview
	}

	review := domain.Review{
		Rating:    rating,
		Content:   content,
		AuthorID:  caller.ID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.perfumes.AppendReview(ctx, perfumeID, review); err != nil {
		return nil, err
	}

	if s.auditor != nil {
		s.auditor.Enqueue(domain.ReviewEvent{
			PerfumeID: perfumeID,
			AuthorID:  caller.ID,
			Rating:    rating,
			CreatedAt: review.CreatedAt,
		})
	}

	s.log.Info().
		Str("perfume_id", perfumeID).
		Str("member_id", caller.ID).
		Int("rating", rating).
		Msg("review submitted")

	return &review, nil
}
