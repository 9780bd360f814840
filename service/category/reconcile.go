package category

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"storefront.GO/config"
	"storefront.GO/gateway"
	entity "storefront.GO/model/entity"
)

// DefaultDescription is set on every category the job creates.
const DefaultDescription = "Auto-detected category"

// ReconcileResult holds counters and timing from a reconciliation run.
type ReconcileResult struct {
	ProductsScanned    int
	ExistingCategories int
	Candidates         []string
	Created            int
	Skipped            int
	Warnings           []string
	Outcome            string
	TotalTime          time.Duration
}

// Reconcile diffs the product catalog's distinct category names against the
// existing category collection and creates the missing ones. Matching is
// case-insensitive on trimmed names; creates run sequentially and a failure
// on one candidate is logged and skipped, never aborting the rest.
func Reconcile(ctx context.Context, gw *gateway.Gateway) (*ReconcileResult, error) {
	start := time.Now()
	config.LoadAppConfig()

	page, err := gw.ListProducts(ctx, gateway.ListParams{
		PageSize: config.AppConfig.CatalogPageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	existing, err := gw.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	res := &ReconcileResult{
		ProductsScanned:    len(page.Items),
		ExistingCategories: len(existing),
	}
	if len(page.Items) == 0 {
		res.Outcome = "no products found, nothing to reconcile"
		res.TotalTime = time.Since(start)
		return res, nil
	}

	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[strings.ToLower(strings.TrimSpace(c.Name))] = true
	}

	// Distinct trimmed non-empty product categories, first-seen casing wins.
	seen := make(map[string]bool)
	for _, p := range page.Items {
		name := strings.TrimSpace(p.Category)
		if name == "" {
			continue
		}
		fold := strings.ToLower(name)
		if seen[fold] || known[fold] {
			seen[fold] = true
			continue
		}
		seen[fold] = true
		res.Candidates = append(res.Candidates, name)
	}

	if len(res.Candidates) == 0 {
		res.Outcome = "all product categories already exist, nothing to add"
		res.TotalTime = time.Since(start)
		return res, nil
	}

	for _, name := range res.Candidates {
		_, err := gw.CreateCategory(ctx, entity.Category{
			Name:        name,
			Description: DefaultDescription,
			IsActive:    true,
		})
		if err != nil {
			log.Printf("reconcile: create %q failed, skipping: %v", name, err)
			res.Warnings = append(res.Warnings, fmt.Sprintf("category %q: %v", name, err))
			res.Skipped++
			continue
		}
		res.Created++
	}

	res.Outcome = fmt.Sprintf("added %d of %d candidate categories", res.Created, len(res.Candidates))
	res.TotalTime = time.Since(start)
	return res, nil
}
