package entity

import (
	"time"

	"gorm.io/datatypes"
)

// ClientKV is one row of the durable client-local key-value store. Values
// are JSON-serialized arrays (cart lines, wishlist entries).
type ClientKV struct {
	Key       string         `gorm:"column:key;type:varchar(128);primaryKey" json:"key"`
	Value     datatypes.JSON `gorm:"column:value;not null" json:"value"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ClientKV) TableName() string {
	return "client_kv"
}
