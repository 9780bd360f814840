package category

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"storefront.GO/api"
	_ "storefront.GO/api/catalog"
	"storefront.GO/core/auth"
	"storefront.GO/gateway"
	entity "storefront.GO/model/entity"
)

func fixtureGateway(t *testing.T) (*gateway.Gateway, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	e, err := api.NewServer(db)
	if err != nil {
		t.Fatalf("assemble fixture server: %v", err)
	}
	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)
	return gateway.New(ts.URL), db
}

func seedProducts(t *testing.T, db *gorm.DB, categories ...string) {
	t.Helper()
	for i, cat := range categories {
		p := entity.Product{
			ID:       "rec-" + string(rune('a'+i)),
			Name:     "Product " + string(rune('A'+i)),
			Category: cat,
			Price:    100,
		}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
}

func seedCategory(t *testing.T, db *gorm.DB, id, name string) {
	t.Helper()
	if err := db.Create(&entity.Category{ID: id, Name: name, IsActive: true}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
}

func TestReconcile_CreatesOnlyMissingCaseInsensitive(t *testing.T) {
	gw, db := fixtureGateway(t)
	gw.SetToken(auth.Token())
	seedCategory(t, db, "c1", "Wedding")
	seedProducts(t, db, "wedding", "Festival", "festival")

	res, err := Reconcile(context.Background(), gw)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if res.ProductsScanned != 3 || res.ExistingCategories != 1 {
		t.Errorf("scanned %d / existing %d, want 3 / 1", res.ProductsScanned, res.ExistingCategories)
	}
	if len(res.Candidates) != 1 || res.Candidates[0] != "Festival" {
		t.Fatalf("Candidates = %v, want first-seen casing [Festival]", res.Candidates)
	}
	if res.Created != 1 || res.Skipped != 0 {
		t.Errorf("created %d / skipped %d, want 1 / 0", res.Created, res.Skipped)
	}
	if res.Outcome != "added 1 of 1 candidate categories" {
		t.Errorf("Outcome = %q", res.Outcome)
	}

	cats, err := gw.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("categories after reconcile = %d, want 2", len(cats))
	}
	var festival *entity.Category
	for i := range cats {
		if cats[i].Name == "Festival" {
			festival = &cats[i]
		}
	}
	if festival == nil {
		t.Fatal("created category Festival not found")
	}
	if festival.Description != DefaultDescription {
		t.Errorf("Description = %q, want %q", festival.Description, DefaultDescription)
	}
	if !festival.IsActive {
		t.Error("created category should be active")
	}
}

func TestReconcile_NoProducts(t *testing.T) {
	gw, _ := fixtureGateway(t)
	gw.SetToken(auth.Token())

	res, err := Reconcile(context.Background(), gw)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if res.Created != 0 || len(res.Candidates) != 0 {
		t.Errorf("result = %+v, want nothing created", res)
	}
	if res.Outcome != "no products found, nothing to reconcile" {
		t.Errorf("Outcome = %q", res.Outcome)
	}
}

func TestReconcile_AllCategoriesAlreadyExist(t *testing.T) {
	gw, db := fixtureGateway(t)
	gw.SetToken(auth.Token())
	seedCategory(t, db, "c1", "Casual")
	seedProducts(t, db, "casual", "CASUAL", "Casual")

	res, err := Reconcile(context.Background(), gw)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if res.Created != 0 || len(res.Candidates) != 0 {
		t.Errorf("result = %+v, want nothing to add", res)
	}
	if res.Outcome != "all product categories already exist, nothing to add" {
		t.Errorf("Outcome = %q", res.Outcome)
	}
}

func TestReconcile_BlankCategoriesIgnored(t *testing.T) {
	gw, db := fixtureGateway(t)
	gw.SetToken(auth.Token())
	seedProducts(t, db, "", "   ", "Festival")

	res, err := Reconcile(context.Background(), gw)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0] != "Festival" {
		t.Errorf("Candidates = %v, blank names must not become candidates", res.Candidates)
	}
}

func TestReconcile_TrimsCandidateNames(t *testing.T) {
	gw, db := fixtureGateway(t)
	gw.SetToken(auth.Token())
	seedProducts(t, db, "  Festival  ")

	res, err := Reconcile(context.Background(), gw)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if len(res.Candidates) != 1 || res.Candidates[0] != "Festival" {
		t.Errorf("Candidates = %v, want trimmed [Festival]", res.Candidates)
	}
}

func TestReconcile_CreateFailureSkipsAndContinues(t *testing.T) {
	gw, db := fixtureGateway(t)
	// no token: every create is rejected upstream
	seedProducts(t, db, "Wedding", "Festival")

	res, err := Reconcile(context.Background(), gw)
	if err != nil {
		t.Fatalf("Reconcile must not abort on per-candidate failures: %v", err)
	}
	if res.Created != 0 || res.Skipped != 2 {
		t.Errorf("created %d / skipped %d, want 0 / 2", res.Created, res.Skipped)
	}
	if len(res.Warnings) != 2 {
		t.Errorf("Warnings = %v, want one per failed candidate", res.Warnings)
	}
	for _, w := range res.Warnings {
		if !strings.Contains(w, "category") {
			t.Errorf("warning %q does not name the candidate", w)
		}
	}
	if res.Outcome != "added 0 of 2 candidate categories" {
		t.Errorf("Outcome = %q", res.Outcome)
	}
}
