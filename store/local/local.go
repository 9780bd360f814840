package local

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "storefront.GO/model/entity"
)

// Store is the durable client-local key-value store the cart and wishlist
// persist into. One row per fixed key, value is a JSON-serialized array.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get returns the raw JSON stored under key. found is false for a missing
// key; decoding is left to the caller so corrupt data can default explicitly.
func (s *Store) Get(key string) (raw []byte, found bool, err error) {
	var row entity.ClientKV
	if err := s.db.Where("key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(row.Value), true, nil
}

// Put overwrites the value under key with raw JSON.
func (s *Store) Put(key string, raw []byte) error {
	row := entity.ClientKV{Key: key, Value: datatypes.JSON(raw)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(&row).Error
}

// Delete removes a key. Missing keys are not an error.
func (s *Store) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&entity.ClientKV{}).Error
}
