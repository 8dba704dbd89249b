package ports

import (
	"context"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

// ReviewEventRepository persists review audit events.
type ReviewEventRepository interface {
	InsertEvent(ctx context.Context, event *domain.ReviewEvent) error
}
