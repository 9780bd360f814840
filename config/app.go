package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName  string
	Env      string
	Debug    bool
	MediaUrl string

	// ApiBaseUrl is the catalog backend every gateway call is issued against.
	ApiBaseUrl string

	// CatalogPageSize is the page size the storefront requests when it wants
	// the whole active catalog in one response. Known scalability compromise.
	CatalogPageSize int

	// ReservedCategory is excluded from the general shop and is the only
	// category the accessories view shows.
	ReservedCategory string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		pageSize := 1000
		if v, err := strconv.Atoi(os.Getenv("CATALOG_PAGE_SIZE")); err == nil && v > 0 {
			pageSize = v
		}
		AppConfig = &Config{
			AppName:          GetEnv("APP_NAME", "GoStorefront"),
			Env:              os.Getenv("APP_ENV"),
			Debug:            os.Getenv("DEBUG") == "true",
			MediaUrl:         GetEnv("MEDIA_URL", "https://storefront.cnxt.link/media/catalog/product/"),
			ApiBaseUrl:       GetEnv("API_BASE_URL", "http://localhost:8080"),
			CatalogPageSize:  pageSize,
			ReservedCategory: GetEnv("RESERVED_CATEGORY", "Bangles"),
		}
	})
}
