package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront.GO/config"
)

// Token returns the static bearer token mutating calls must carry.
func Token() string {
	return config.GetEnv("API_TOKEN", "storefront-dev-token")
}

// Credentials returns the admin login pair the fixture accepts.
func Credentials() (email, password string) {
	return config.GetEnv("ADMIN_EMAIL", "admin@example.com"),
		config.GetEnv("ADMIN_PASS", "admin123")
}

// Middleware returns the bearer-token middleware for the fixture API.
// Reads are public; POST/PUT/DELETE on catalog routes require the token.
func Middleware() echo.MiddlewareFunc {
	skipper := buildSkipper()
	token := Token()
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Validator: func(key string, c echo.Context) (bool, error) {
			return key == token, nil
		},
		Skipper: skipper,
		// a missing token is an auth failure, not a bad request
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Missing or invalid token")
		},
	})
}

func buildSkipper() middleware.Skipper {
	skipPaths := config.GetAuthSkipperPaths()
	return func(c echo.Context) bool {
		if c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
			return true
		}
		path := c.Path()
		for _, skip := range skipPaths {
			if path == skip {
				return true
			}
		}
		return false
	}
}
