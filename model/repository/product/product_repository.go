package product

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	entity "storefront.GO/model/entity"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListOptions mirror the list endpoint's query parameters.
type ListOptions struct {
	Keyword      string
	Category     string
	Status       string
	Sort         string
	PageNumber   int
	PageSize     int
	IsNewArrival *bool
}

// List returns one page of products plus the total match count.
func (r *ProductRepository) List(opts ListOptions) ([]entity.Product, int64, error) {
	q := r.db.Model(&entity.Product{})

	if opts.Keyword != "" {
		kw := "%" + strings.ToLower(opts.Keyword) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", kw, kw)
	}
	if opts.Category != "" {
		q = q.Where("LOWER(category) = ?", strings.ToLower(opts.Category))
	}
	switch opts.Status {
	case "active":
		q = q.Where("in_stock = ?", true)
	case "inactive":
		q = q.Where("in_stock = ?", false)
	}
	if opts.IsNewArrival != nil {
		q = q.Where("is_new_arrival = ?", *opts.IsNewArrival)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch opts.Sort {
	case "newest":
		q = q.Order("created_at DESC")
	case "price-asc":
		q = q.Order("price ASC")
	case "price-desc":
		q = q.Order("price DESC")
	default:
		q = q.Order("entity_id ASC")
	}

	page := opts.PageNumber
	if page < 1 {
		page = 1
	}
	size := opts.PageSize
	if size < 1 {
		size = 20
	}
	var items []entity.Product
	err := q.Offset((page - 1) * size).Limit(size).Find(&items).Error
	return items, total, err
}

func (r *ProductRepository) Get(id string) (*entity.Product, error) {
	var p entity.Product
	if err := r.db.Where("entity_id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.Create(p).Error
}

func (r *ProductRepository) Update(id string, p *entity.Product) error {
	p.ID = id
	return r.db.Save(p).Error
}

func (r *ProductRepository) Delete(id string) error {
	res := r.db.Where("entity_id = ?", id).Delete(&entity.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DistinctCategories returns the distinct non-empty category strings across
// all products.
func (r *ProductRepository) DistinctCategories() ([]string, error) {
	var names []string
	err := r.db.Model(&entity.Product{}).
		Where("category <> ''").
		Distinct().
		Pluck("category", &names).Error
	return names, err
}
