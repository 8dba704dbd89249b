package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/perfumehub/catalog-system/internal/core/domain"
	"github.com/perfumehub/catalog-system/internal/core/ports"
)

const collectionReviewEvents = "review_events"

// ReviewEventRepository persists review audit events to the review_events
// collection. Audit writes are best-effort; the review itself is the
// source of truth.
type ReviewEventRepository struct {
	coll *mongo.Collection
}

func NewReviewEventRepository(db *mongo.Database) ports.ReviewEventRepository {
	return &ReviewEventRepository{coll: db.Collection(collectionReviewEvents)}
}

func (r *ReviewEventRepository) InsertEvent(ctx context.Context, event *domain.ReviewEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"rating":       event.Rating,
		"created_at":   event.CreatedAt.UTC(),
		"processed_at": time.Now().UTC(),
	}
	if oid, err := primitive.ObjectIDFromHex(event.PerfumeID); err == nil {
		doc["perfume_id"] = oid
	}
	if oid, err := primitive.ObjectIDFromHex(event.AuthorID); err == nil {
		doc["author_id"] = oid
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
