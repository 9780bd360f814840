package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"storefront.GO/config"
	"storefront.GO/core/cache"
	entity "storefront.GO/model/entity"
)

const (
	detailCacheTTL = 300 // seconds
	listCacheTTL   = 120 * time.Second

	listCachePrefix = "catalog:list:"
	tagProducts     = "gateway:products"
)

// ProductPage is the paged list response shape.
type ProductPage struct {
	Items      []entity.Product `json:"items"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	TotalCount int              `json:"totalCount"`
}

// Gateway is the typed client for the remote catalog backend. Reads are
// public; mutators attach the bearer token set via SetToken/Login.
type Gateway struct {
	baseURL string
	client  *http.Client
	token   string
	cache   *cache.Cache
}

// New creates a gateway against baseURL. An empty baseURL falls back to the
// configured API base.
func New(baseURL string) *Gateway {
	if baseURL == "" {
		config.LoadAppConfig()
		baseURL = config.AppConfig.ApiBaseUrl
	}
	return &Gateway{
		baseURL: baseURL,
		client:  &http.Client{},
		cache:   cache.GetInstance(),
	}
}

// SetToken stores the bearer credential used for mutating calls.
func (g *Gateway) SetToken(token string) {
	g.token = token
}

// Login authenticates against the backend and stores the returned token.
func (g *Gateway) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := g.do(ctx, http.MethodPost, "/api/login", "", body, &out); err != nil {
		return "", err
	}
	g.token = out.Token
	return out.Token, nil
}

// ListProducts fetches a product page. Responses are cached in Redis (when
// configured) keyed by the encoded query; mutations flush the cache.
func (g *Gateway) ListProducts(ctx context.Context, params ListParams) (*ProductPage, error) {
	query := params.encode()
	if page, ok := g.cachedList(ctx, query); ok {
		return page, nil
	}

	path := "/api/products"
	if query != "" {
		path += "?" + query
	}
	var raw struct {
		Items      []rawProduct `json:"items"`
		Page       int          `json:"page"`
		TotalPages int          `json:"totalPages"`
		TotalCount int          `json:"totalCount"`
	}
	if err := g.do(ctx, http.MethodGet, path, "", nil, &raw); err != nil {
		return nil, err
	}
	page := &ProductPage{
		Items:      make([]entity.Product, 0, len(raw.Items)),
		Page:       raw.Page,
		TotalPages: raw.TotalPages,
		TotalCount: raw.TotalCount,
	}
	for _, r := range raw.Items {
		page.Items = append(page.Items, normalizeProduct(r))
	}
	g.storeList(ctx, query, page)
	return page, nil
}

// GetProduct fetches one product by identity, via the in-process detail cache.
func (g *Gateway) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	key := "product:" + id
	if v, ok := g.cache.Get(key); ok {
		if p, isProduct := v.(entity.Product); isProduct {
			return &p, nil
		}
	}
	var raw rawProduct
	if err := g.do(ctx, http.MethodGet, "/api/products/"+id, "", nil, &raw); err != nil {
		return nil, err
	}
	p := normalizeProduct(raw)
	g.cache.Set(key, p, detailCacheTTL, []string{tagProducts, "category:" + p.Category})
	return &p, nil
}

// CreateProduct creates a product. Requires a credential token.
func (g *Gateway) CreateProduct(ctx context.Context, p entity.Product) (*entity.Product, error) {
	var raw rawProduct
	if err := g.do(ctx, http.MethodPost, "/api/products", g.token, p, &raw); err != nil {
		return nil, err
	}
	g.invalidateProducts(ctx)
	out := normalizeProduct(raw)
	return &out, nil
}

// UpdateProduct replaces a product's fields. Requires a credential token.
func (g *Gateway) UpdateProduct(ctx context.Context, id string, p entity.Product) (*entity.Product, error) {
	var raw rawProduct
	if err := g.do(ctx, http.MethodPut, "/api/products/"+id, g.token, p, &raw); err != nil {
		return nil, err
	}
	g.invalidateProducts(ctx)
	out := normalizeProduct(raw)
	return &out, nil
}

// DeleteProduct removes a product. Requires a credential token.
func (g *Gateway) DeleteProduct(ctx context.Context, id string) error {
	if err := g.do(ctx, http.MethodDelete, "/api/products/"+id, g.token, nil, nil); err != nil {
		return err
	}
	g.invalidateProducts(ctx)
	return nil
}

// ListCategories fetches all categories.
func (g *Gateway) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var raw []rawCategory
	if err := g.do(ctx, http.MethodGet, "/api/categories", "", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]entity.Category, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalizeCategory(r))
	}
	return out, nil
}

// CreateCategory creates a category. Requires a credential token.
func (g *Gateway) CreateCategory(ctx context.Context, c entity.Category) (*entity.Category, error) {
	var raw rawCategory
	if err := g.do(ctx, http.MethodPost, "/api/categories", g.token, c, &raw); err != nil {
		return nil, err
	}
	out := normalizeCategory(raw)
	return &out, nil
}

// UpdateCategory replaces a category's fields. Requires a credential token.
func (g *Gateway) UpdateCategory(ctx context.Context, id string, c entity.Category) (*entity.Category, error) {
	var raw rawCategory
	if err := g.do(ctx, http.MethodPut, "/api/categories/"+id, g.token, c, &raw); err != nil {
		return nil, err
	}
	out := normalizeCategory(raw)
	return &out, nil
}

// DeleteCategory removes a category. Deletion does not cascade to products.
func (g *Gateway) DeleteCategory(ctx context.Context, id string) error {
	return g.do(ctx, http.MethodDelete, "/api/categories/"+id, g.token, nil, nil)
}

// do issues one JSON request and decodes the response into out (if non-nil).
func (g *Gateway) do(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindRequestFailed, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return &Error{Kind: KindRequestFailed, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return responseError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindRequestFailed, Status: resp.StatusCode, Message: "decode response: " + err.Error()}
	}
	return nil
}

// responseError maps a non-2xx response to the error taxonomy, carrying the
// best-effort server message.
func responseError(resp *http.Response) error {
	msg := fmt.Sprintf("Request failed: %d", resp.StatusCode)
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if b, err := io.ReadAll(resp.Body); err == nil && len(b) > 0 {
		if err := json.Unmarshal(b, &body); err == nil {
			if body.Message != "" {
				msg = body.Message
			} else if body.Error != "" {
				msg = body.Error
			}
		}
	}
	kind := KindRequestFailed
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindUnauthorized
	case http.StatusNotFound:
		kind = KindNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		kind = KindValidationFailed
	}
	return &Error{Kind: kind, Status: resp.StatusCode, Message: msg}
}

// --- Redis-backed list cache (optional, nil-degrade) ---

func (g *Gateway) cachedList(ctx context.Context, query string) (*ProductPage, bool) {
	if config.RedisClient == nil {
		return nil, false
	}
	data, err := config.RedisClient.Get(ctx, listCachePrefix+query).Bytes()
	if err != nil {
		return nil, false
	}
	var page ProductPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, false
	}
	return &page, true
}

func (g *Gateway) storeList(ctx context.Context, query string, page *ProductPage) {
	if config.RedisClient == nil {
		return
	}
	data, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := config.RedisClient.Set(ctx, listCachePrefix+query, data, listCacheTTL).Err(); err != nil {
		log.Printf("gateway: list cache store failed: %v", err)
	}
}

// invalidateProducts flushes the detail cache and every cached list page.
func (g *Gateway) invalidateProducts(ctx context.Context) {
	g.cache.DeleteByTag(tagProducts)
	if config.RedisClient == nil {
		return
	}
	iter := config.RedisClient.Scan(ctx, 0, listCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("gateway: list cache invalidation failed: %v", err)
	}
}
