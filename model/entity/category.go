package entity

import "time"

// Category names are stored case-sensitively but matched case-insensitively
// during reconciliation. ProductCount is derived at read time, never stored.
type Category struct {
	ID          string    `gorm:"column:entity_id;type:varchar(64);primaryKey" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(128);not null;uniqueIndex" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`

	ProductCount int `gorm:"-" json:"productCount"`
}

func (Category) TableName() string {
	return "catalog_category"
}
