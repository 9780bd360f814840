package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"storefront.GO/api"
	"storefront.GO/core/auth"
	entity "storefront.GO/model/entity"
	categoryRepo "storefront.GO/model/repository/category"
	productRepo "storefront.GO/model/repository/product"
)

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

// RegisterCatalogRoutes wires the fixture catalog backend: the REST surface
// the gateway client consumes, serving the raw document shape (_id, images).
func RegisterCatalogRoutes(apiGroup *echo.Group, db *gorm.DB) {
	products := productRepo.NewProductRepository(db)
	categories := categoryRepo.NewCategoryRepository(db)

	apiGroup.POST("/login", loginHandler)

	apiGroup.GET("/products", listProductsHandler(products))
	apiGroup.GET("/products/:id", getProductHandler(products))
	apiGroup.POST("/products", createProductHandler(products))
	apiGroup.PUT("/products/:id", updateProductHandler(products))
	apiGroup.DELETE("/products/:id", deleteProductHandler(products))

	apiGroup.GET("/categories", listCategoriesHandler(categories))
	apiGroup.POST("/categories", createCategoryHandler(categories))
	apiGroup.PUT("/categories/:id", updateCategoryHandler(categories))
	apiGroup.DELETE("/categories/:id", deleteCategoryHandler(categories))
}

func loginHandler(c echo.Context) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	email, pass := auth.Credentials()
	if body.Email != email || body.Password != pass {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid email or password"})
	}
	return c.JSON(http.StatusOK, echo.Map{"token": auth.Token()})
}

func listProductsHandler(repo *productRepo.ProductRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		opts := productRepo.ListOptions{
			Keyword:  c.QueryParam("keyword"),
			Category: c.QueryParam("category"),
			Status:   c.QueryParam("status"),
			Sort:     c.QueryParam("sort"),
		}
		if v, err := strconv.Atoi(c.QueryParam("pageNumber")); err == nil {
			opts.PageNumber = v
		}
		if v, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil {
			opts.PageSize = v
		}
		if v, err := strconv.ParseBool(c.QueryParam("isNewArrival")); err == nil {
			opts.IsNewArrival = &v
		}

		items, total, err := repo.List(opts)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}

		page := opts.PageNumber
		if page < 1 {
			page = 1
		}
		size := opts.PageSize
		if size < 1 {
			size = 20
		}
		totalPages := int(total) / size
		if int(total)%size != 0 || totalPages == 0 {
			totalPages++
		}

		docs := make([]echo.Map, 0, len(items))
		for _, p := range items {
			docs = append(docs, productDoc(p))
		}
		return c.JSON(http.StatusOK, echo.Map{
			"items":      docs,
			"page":       page,
			"totalPages": totalPages,
			"totalCount": total,
		})
	}
}

func getProductHandler(repo *productRepo.ProductRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, err := repo.Get(c.Param("id"))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"message": "Product not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, productDoc(*p))
	}
}

func createProductHandler(repo *productRepo.ProductRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		var p entity.Product
		if err := c.Bind(&p); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		if p.Name == "" {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "name is required"})
		}
		if p.Price < 0 {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "price must be non-negative"})
		}
		if err := repo.Create(&p); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusCreated, productDoc(p))
	}
}

func updateProductHandler(repo *productRepo.ProductRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		var p entity.Product
		if err := c.Bind(&p); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		if err := repo.Update(c.Param("id"), &p); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, productDoc(p))
	}
}

func deleteProductHandler(repo *productRepo.ProductRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := repo.Delete(c.Param("id")); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"message": "Product not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func listCategoriesHandler(repo *categoryRepo.CategoryRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		cats, err := repo.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		docs := make([]echo.Map, 0, len(cats))
		for _, cat := range cats {
			docs = append(docs, categoryDoc(cat))
		}
		return c.JSON(http.StatusOK, docs)
	}
}

func createCategoryHandler(repo *categoryRepo.CategoryRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		var cat entity.Category
		if err := c.Bind(&cat); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		if cat.Name == "" {
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "name is required"})
		}
		if err := repo.Create(&cat); err != nil {
			if errors.Is(err, categoryRepo.ErrDuplicateName) {
				return c.JSON(http.StatusConflict, echo.Map{"message": "Category name already exists"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusCreated, categoryDoc(cat))
	}
}

func updateCategoryHandler(repo *categoryRepo.CategoryRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		var cat entity.Category
		if err := c.Bind(&cat); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
		}
		if err := repo.Update(c.Param("id"), &cat); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.JSON(http.StatusOK, categoryDoc(cat))
	}
}

func deleteCategoryHandler(repo *categoryRepo.CategoryRepository) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := repo.Delete(c.Param("id")); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"message": "Category not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// productDoc maps a product to the raw backend document shape.
func productDoc(p entity.Product) echo.Map {
	var images []string
	if len(p.Images) > 0 {
		_ = json.Unmarshal(p.Images, &images)
	}
	doc := echo.Map{
		"_id":          p.ID,
		"name":         p.Name,
		"category":     p.Category,
		"subCategory":  p.SubCategory,
		"price":        p.Price,
		"images":       images,
		"image":        p.Image,
		"isNewArrival": p.IsNewArrival,
		"isFeatured":   p.IsFeatured,
		"isHandmade":   p.IsHandmade,
		"inStock":      p.InStock,
	}
	if p.CreatedAt != nil {
		doc["createdAt"] = p.CreatedAt
	}
	return doc
}

func categoryDoc(c entity.Category) echo.Map {
	return echo.Map{
		"_id":          c.ID,
		"name":         c.Name,
		"description":  c.Description,
		"isActive":     c.IsActive,
		"createdAt":    c.CreatedAt,
		"productCount": c.ProductCount,
	}
}
