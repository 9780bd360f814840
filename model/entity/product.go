package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Product is the canonical product shape every component reads. The fixture
// backend persists it in catalog_product; the gateway fills Image from the
// backend's raw image list during normalization.
type Product struct {
	ID          string  `gorm:"column:entity_id;type:varchar(64);primaryKey" json:"id"`
	Name        string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Category    string  `gorm:"column:category;type:varchar(128);not null" json:"category"`
	SubCategory string  `gorm:"column:sub_category;type:varchar(128)" json:"subCategory,omitempty"`
	Price       float64 `gorm:"column:price;type:decimal(12,4);not null;default:0" json:"price"`

	// Image is the single display identifier; Images is the backend-side list
	// it gets flattened from.
	Image  string         `gorm:"column:image;type:varchar(255)" json:"image"`
	Images datatypes.JSON `gorm:"column:images" json:"images,omitempty"`

	IsNewArrival bool `gorm:"column:is_new_arrival;not null;default:false" json:"isNewArrival"`
	IsFeatured   bool `gorm:"column:is_featured;not null;default:false" json:"isFeatured"`
	IsHandmade   bool `gorm:"column:is_handmade;not null;default:false" json:"isHandmade"`
	InStock      bool `gorm:"column:in_stock;not null;default:true" json:"inStock"`

	CreatedAt *time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt,omitempty"`
}

func (Product) TableName() string {
	return "catalog_product"
}
