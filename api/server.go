package api

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"storefront.GO/core/auth"
	entity "storefront.GO/model/entity"
)

// NewServer assembles the fixture catalog backend: automigrated tables,
// bearer auth on mutators, and every registered API module. Tests and the
// fixture:serve command both start from here.
func NewServer(db *gorm.DB) (*echo.Echo, error) {
	if err := db.AutoMigrate(&entity.Product{}, &entity.Category{}); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	ApplyModules(apiGroup, db)
	ApplyRoutes(e, db)

	log.Printf("fixture server assembled with %d routes", len(e.Routes()))
	return e, nil
}
