package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/perfumehub/catalog-system/internal/core/domain"
)

const collectionPerfumes = "perfumes"

// PerfumeRepository implements ports.PerfumeRepository backed by MongoDB.
type PerfumeRepository struct {
	coll *mongo.Collection
}

func NewPerfumeRepository(db *mongo.Database) *PerfumeRepository {
	return &PerfumeRepository{coll: db.Collection(collectionPerfumes)}
}

type mongoPerfume struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"perfume_name"`
	URI            string             `bson:"uri"`
	Price          float64            `bson:"price"`
	Concentration  string             `bson:"concentration"`
	Description    string             `bson:"description"`
	Ingredients    string             `bson:"ingredients"`
	Volume         int                `bson:"volume"`
	TargetAudience string             `bson:"target_audience"`
	BrandID        primitive.ObjectID `bson:"brand_id"`
	Reviews        []mongoReview      `bson:"reviews"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

type mongoReview struct {
	Rating    int                `bson:"rating"`
	Content   string             `bson:"content"`
	AuthorID  primitive.ObjectID `bson:"author_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (p mongoPerfume) toDomain() *domain.Perfume {
	reviews := make([]domain.Review, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		reviews = append(reviews, domain.Review{
			Rating:    r.Rating,
			Content:   r.Content,
			AuthorID:  r.AuthorID.Hex(),
			CreatedAt: r.CreatedAt.UTC(),
		})
	}
	return &domain.Perfume{
		ID:             p.ID.Hex(),
		Name:           p.Name,
		URI:            p.URI,
		Price:          p.Price,
		Concentration:  p.Concentration,
		Description:    p.Description,
		Ingredients:    p.Ingredients,
		Volume:         p.Volume,
		TargetAudience: p.TargetAudience,
		BrandID:        p.BrandID.Hex(),
		Reviews:        reviews,
		CreatedAt:      p.CreatedAt.UTC(),
		UpdatedAt:      p.UpdatedAt.UTC(),
	}
}

func toMongoPerfume(p *domain.Perfume) (mongoPerfume, error) {
	brandID, err := primitive.ObjectIDFromHex(p.BrandID)
	if err != nil {
		return mongoPerfume{}, domain.ErrBrandNotFound
	}
	reviews := make([]mongoReview, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		authorID, err := primitive.ObjectIDFromHex(r.AuthorID)
		if err != nil {
			return mongoPerfume{}, domain.ErrInvalidInput
		}
		reviews = append(reviews, mongoReview{
			Rating:    r.Rating,
			Content:   r.Content,
			AuthorID:  authorID,
			CreatedAt: r.CreatedAt,
		})
	}
	return mongoPerfume{
		Name:           p.Name,
		URI:            p.URI,
		Price:          p.Price,
		Concentration:  p.Concentration,
		Description:    p.Description,
		Ingredients:    p.Ingredients,
		Volume:         p.Volume,
		TargetAudience: p.TargetAudience,
		BrandID:        brandID,
		Reviews:        reviews,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}, nil
}

func (r *PerfumeRepository) Create(ctx context.Context, p *domain.Perfume) (*domain.Perfume, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toMongoPerfume(p)
	if err != nil {
		return nil, err
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert perfume: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PerfumeRepository) FindByID(ctx context.Context, id string) (*domain.Perfume, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPerfumeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p mongoPerfume
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPerfumeNotFound
		}
		return nil, fmt.Errorf("find perfume: %w", err)
	}
	return p.toDomain(), nil
}

func (r *PerfumeRepository) List(ctx context.Context, brandID string) ([]*domain.Perfume, error) {
	filter := bson.M{}
	if brandID != "" {
		oid, err := primitive.ObjectIDFromHex(brandID)
		if err != nil {
			return nil, domain.ErrBrandNotFound
		}
		filter["brand_id"] = oid
	}
	return r.find(ctx, filter)
}

func (r *PerfumeRepository) Search(ctx context.Context, q string) ([]*domain.Perfume, error) {
	filter := bson.M{"perfume_name": bson.M{"$regex": q, "$options": "i"}}
	return r.find(ctx, filter)
}

func (r *PerfumeRepository) FindReviewedBy(ctx context.Context, memberID string) ([]*domain.Perfume, error) {
	oid, err := primitive.ObjectIDFromHex(memberID)
	if err != nil {
		return nil, domain.ErrMemberNotFound
	}
	return r.find(ctx, bson.M{"reviews.author_id": oid})
}

func (r *PerfumeRepository) find(ctx context.Context, filter bson.M) ([]*domain.Perfume, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find perfumes: %w", err)
	}
	defer cur.Close(ctx)

	var perfumes []*domain.Perfume
	for cur.Next(ctx) {
		var p mongoPerfume
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode perfume: %w", err)
		}
		perfumes = append(perfumes, p.toDomain())
	}
	return perfumes, cur.Err()
}

func (r *PerfumeRepository) Update(ctx context.Context, id string, p *domain.Perfume) (*domain.Perfume, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPerfumeNotFound
	}
	brandID, err := primitive.ObjectIDFromHex(p.BrandID)
	if err != nil {
		return nil, domain.ErrBrandNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// Reviews are deliberately excluded: catalog updates never touch the
	// embedded review list.
	set := bson.M{
		"perfume_name":    p.Name,
		"uri":             p.URI,
		"price":           p.Price,
		"concentration":   p.Concentration,
		"description":     p.Description,
		"ingredients":     p.Ingredients,
		"volume":          p.Volume,
		"target_audience": p.TargetAudience,
		"brand_id":        brandID,
		"updated_at":      time.Now().UTC(),
	}

	var updated mongoPerfume
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPerfumeNotFound
		}
		return nil, fmt.Errorf("update perfume: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *PerfumeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPerfumeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete perfume: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPerfumeNotFound
	}
	return nil
}

func (r *PerfumeRepository) CountByBrand(ctx context.Context, brandID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(brandID)
	if err != nil {
		return 0, domain.ErrBrandNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"brand_id": oid})
	if err != nil {
		return 0, fmt.Errorf("count perfumes by brand: %w", err)
	}
	return n, nil
}

// AppendReview pushes a review onto the perfume's embedded list with a
// single conditional update: the filter only matches when no existing
// review carries the same author id, so the duplicate check and the append
// are one atomic document write. Two concurrent calls for the same
// (perfume, author) pair cannot both match the filter.
func (r *PerfumeRepository) AppendReview(ctx context.Context, perfumeID string, review domain.Review) error {
	oid, err := primitive.ObjectIDFromHex(perfumeID)
	if err != nil {
		return domain.ErrPerfumeNotFound
	}
	authorID, err := primitive.ObjectIDFromHex(review.AuthorID)
	if err != nil {
		return domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"_id":               oid,
		"reviews.author_id": bson.M{"$ne": authorID},
	}
	update := bson.M{
		"$push": bson.M{"reviews": mongoReview{
			Rating:    review.Rating,
			Content:   review.Content,
			AuthorID:  authorID,
			CreatedAt: review.CreatedAt,
		}},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("append review: %w", err)
	}
	if res.MatchedCount == 0 {
		// Either the perfume does not exist or the author already reviewed
		// it; a second lookup distinguishes the two.
		n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return fmt.Errorf("append review: %w", err)
		}
		if n == 0 {
			return domain.ErrPerfumeNotFound
		}
		return domain.ErrDuplicateReview
	}
	return nil
}

// EnsureIndexes creates the indexes the list and search paths rely on.
func (r *PerfumeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "brand_id", Value: 1}}},
		{Keys: bson.D{{Key: "perfume_name", Value: 1}}},
		{Keys: bson.D{{Key: "reviews.author_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
