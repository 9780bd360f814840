package category

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront.GO/core/cache"
	entity "storefront.GO/model/entity"
)

// ErrDuplicateName is returned when a create names an existing category
// (matched case-insensitively).
var ErrDuplicateName = errors.New("category name already exists")

const listCacheKey = "repo:categories:list"

type CategoryRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db, cache: cache.NewCache()}
}

// List returns all categories with their derived product counts. The result
// is cached until the next mutation.
func (r *CategoryRepository) List() ([]entity.Category, error) {
	if v, ok := r.cache.Get(listCacheKey); ok {
		if cats, isList := v.([]entity.Category); isList {
			return cats, nil
		}
	}
	var cats []entity.Category
	if err := r.db.Order("name ASC").Find(&cats).Error; err != nil {
		return nil, err
	}
	for i := range cats {
		var count int64
		err := r.db.Model(&entity.Product{}).
			Where("LOWER(category) = ? OR LOWER(sub_category) = ?",
				strings.ToLower(cats[i].Name), strings.ToLower(cats[i].Name)).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		cats[i].ProductCount = int(count)
	}
	r.cache.Set(listCacheKey, cats, 300, nil)
	return cats, nil
}

func (r *CategoryRepository) Get(id string) (*entity.Category, error) {
	var c entity.Category
	if err := r.db.Where("entity_id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a category, enforcing case-insensitive name uniqueness.
func (r *CategoryRepository) Create(c *entity.Category) error {
	var count int64
	err := r.db.Model(&entity.Category{}).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(c.Name))).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateName
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := r.db.Create(c).Error; err != nil {
		return err
	}
	r.InvalidateCache()
	return nil
}

func (r *CategoryRepository) Update(id string, c *entity.Category) error {
	c.ID = id
	if err := r.db.Save(c).Error; err != nil {
		return err
	}
	r.InvalidateCache()
	return nil
}

// Delete removes a category. Products keep their category string; the
// resulting orphan is an accepted consistency gap.
func (r *CategoryRepository) Delete(id string) error {
	res := r.db.Where("entity_id = ?", id).Delete(&entity.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	r.InvalidateCache()
	return nil
}

// InvalidateCache drops the cached list.
func (r *CategoryRepository) InvalidateCache() {
	r.cache.Delete(listCacheKey)
}
