package gateway

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	entity "storefront.GO/model/entity"
)

// rawProduct is the backend document shape before normalization.
type rawProduct struct {
	ID           string     `json:"_id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	SubCategory  string     `json:"subCategory"`
	Price        float64    `json:"price"`
	Images       []string   `json:"images"`
	Image        string     `json:"image"`
	IsNewArrival bool       `json:"isNewArrival"`
	IsFeatured   bool       `json:"isFeatured"`
	IsHandmade   bool       `json:"isHandmade"`
	InStock      bool       `json:"inStock"`
	CreatedAt    *time.Time `json:"createdAt"`
}

type rawCategory struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	ProductCount int       `json:"productCount"`
}

// normalizeProduct maps the backend document to the canonical product shape:
// ID aliases _id, Image is the first images entry, else the single image
// field, else "" — checked in that priority order.
func normalizeProduct(r rawProduct) entity.Product {
	img := ""
	switch {
	case len(r.Images) > 0:
		img = r.Images[0]
	case r.Image != "":
		img = r.Image
	}
	var images datatypes.JSON
	if len(r.Images) > 0 {
		// round-trip through the JSON column type the entity carries
		images, _ = marshalImages(r.Images)
	}
	return entity.Product{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		SubCategory:  r.SubCategory,
		Price:        r.Price,
		Image:        img,
		Images:       images,
		IsNewArrival: r.IsNewArrival,
		IsFeatured:   r.IsFeatured,
		IsHandmade:   r.IsHandmade,
		InStock:      r.InStock,
		CreatedAt:    r.CreatedAt,
	}
}

func marshalImages(imgs []string) (datatypes.JSON, error) {
	b, err := json.Marshal(imgs)
	return datatypes.JSON(b), err
}

func normalizeCategory(r rawCategory) entity.Category {
	return entity.Category{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		ProductCount: r.ProductCount,
	}
}
