package domain

import "time"

// Brand is referenced by zero or more perfumes. A brand cannot be deleted
// while any perfume references it.
type Brand struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"brand_name" bson:"brand_name"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
