package domain

import "time"

const (
	RatingMin = 1
	RatingMax = 5
)

// Review is a rating+text feedback entry embedded inside exactly one
// Perfume. It has no independent lifecycle: created by review submission,
// removed only when the parent perfume is deleted.
type Review struct {
	Rating    int       `json:"rating" bson:"rating"`
	Content   string    `json:"content" bson:"content"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Perfume is the catalog aggregate root. Reviews is an ordered embedded
// sequence holding at most one entry per author.
type Perfume struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"perfume_name" bson:"perfume_name"`
	URI            string    `json:"uri" bson:"uri"`
	Price          float64   `json:"price" bson:"price"`
	Concentration  string    `json:"concentration" bson:"concentration"`
	Description    string    `json:"description" bson:"description"`
	Ingredients    string    `json:"ingredients" bson:"ingredients"`
	Volume         int       `json:"volume" bson:"volume"`
	TargetAudience string    `json:"target_audience" bson:"target_audience"`
	BrandID        string    `json:"brand_id" bson:"brand_id"`
	BrandName      string    `json:"brand_name,omitempty" bson:"-"`
	Reviews        []Review  `json:"reviews" bson:"reviews"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// ReviewBy returns the review authored by memberID, or nil.
func (p *Perfume) ReviewBy(memberID string) *Review {
	for i := range p.Reviews {
		if p.Reviews[i].AuthorID == memberID {
			return &p.Reviews[i]
		}
	}
	return nil
}

// ValidRating reports whether r is an integer rating within [1,5].
func ValidRating(r int) bool {
	return r >= RatingMin && r <= RatingMax
}
