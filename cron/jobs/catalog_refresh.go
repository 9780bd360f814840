package jobs

import (
	"context"
	"log"

	"storefront.GO/cron"
	"storefront.GO/gateway"
	"storefront.GO/store/catalog"
)

func init() {
	cron.Register("catalogrefreshjob", "@every 15m", CatalogRefreshJob)
}

// CatalogRefreshJob re-fetches the active catalog snapshot so long-lived
// sessions pick up admin-side changes between mounts.
func CatalogRefreshJob(args ...string) {
	baseURL := ""
	if len(args) > 0 {
		baseURL = args[0]
	}
	store := catalog.New(gateway.New(baseURL))
	store.Init(context.Background())

	snap := store.Snapshot()
	if snap.Status == catalog.StatusError {
		log.Printf("catalog refresh failed: %s", snap.ErrorMessage)
		return
	}
	log.Printf("catalog refreshed: %d products, %d categories", len(snap.Items), len(snap.Categories))
}
