package handler

import "github.com/perfumehub/catalog-system/internal/core/ports"

type perfumeRequest struct {
	Name           string  `json:"perfume_name"    validate:"required"`
	URI            string  `json:"uri"             validate:"required"`
	Price          float64 `json:"price"           validate:"required,gt=0"`
	Concentration  string  `json:"concentration"   validate:"required,oneof=Extrait EDP EDT"`
	Description    string  `json:"description"     validate:"required"`
	Ingredients    string  `json:"ingredients"     validate:"required"`
	Volume         int     `json:"volume"          validate:"required,gt=0"`
	TargetAudience string  `json:"target_audience" validate:"required,oneof=male female unisex"`
	BrandID        string  `json:"brand_id"        validate:"required"`
}

func (r perfumeRequest) toInput() ports.PerfumeInput {
	return ports.PerfumeInput{
		Name:           r.Name,
		URI:            r.URI,
		Price:          r.Price,
		Concentration:  r.Concentration,
		Description:    r.Description,
		Ingredients:    r.Ingredients,
		Volume:         r.Volume,
		TargetAudience: r.TargetAudience,
		BrandID:        r.BrandID,
	}
}

// reviewRequest carries an unvalidated rating; range and content checks
// belong to the review service so both surfaces share them.
type reviewRequest struct {
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

type brandRequest struct {
	Name string `json:"brand_name" validate:"required"`
}
