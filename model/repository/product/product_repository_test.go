package product

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "storefront.GO/model/entity"
)

func testRepo(t *testing.T) *ProductRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewProductRepository(db)
}

func seedCatalog(t *testing.T, repo *ProductRepository) {
	t.Helper()
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range []entity.Product{
		{ID: "p1", Name: "Silk Thread Necklace", Category: "Casual", Price: 1000, InStock: true, CreatedAt: &t1},
		{ID: "p2", Name: "Kundan Choker", Category: "Wedding", Price: 3000, InStock: true, IsNewArrival: true, CreatedAt: &t2},
		{ID: "p3", Name: "Terracotta Jhumka", Category: "Festival", Price: 2000, InStock: false, CreatedAt: &t1},
	} {
		row := p
		if err := repo.Create(&row); err != nil {
			t.Fatalf("seed %s: %v", p.ID, err)
		}
	}
}

func TestList_KeywordMatchesNameOrCategory(t *testing.T) {
	repo := testRepo(t)
	seedCatalog(t, repo)

	items, total, err := repo.List(ListOptions{Keyword: "silk"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ID != "p1" {
		t.Errorf("keyword on name = %v (total %d)", items, total)
	}

	items, total, err = repo.List(ListOptions{Keyword: "WEDD"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || items[0].ID != "p2" {
		t.Errorf("keyword on category = %v (total %d)", items, total)
	}
}

func TestList_CategoryIsCaseInsensitiveEquality(t *testing.T) {
	repo := testRepo(t)
	seedCatalog(t, repo)

	items, total, err := repo.List(ListOptions{Category: "wedding"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || items[0].ID != "p2" {
		t.Errorf("items = %v (total %d)", items, total)
	}
}

func TestList_StatusFiltersByStock(t *testing.T) {
	repo := testRepo(t)
	seedCatalog(t, repo)

	_, total, err := repo.List(ListOptions{Status: "active"})
	if err != nil {
		t.Fatalf("List active: %v", err)
	}
	if total != 2 {
		t.Errorf("active total = %d, want 2", total)
	}

	items, total, err := repo.List(ListOptions{Status: "inactive"})
	if err != nil {
		t.Fatalf("List inactive: %v", err)
	}
	if total != 1 || items[0].ID != "p3" {
		t.Errorf("inactive = %v (total %d)", items, total)
	}
}

func TestList_NewArrivalFlag(t *testing.T) {
	repo := testRepo(t)
	seedCatalog(t, repo)

	flag := true
	items, total, err := repo.List(ListOptions{IsNewArrival: &flag})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || items[0].ID != "p2" {
		t.Errorf("new arrivals = %v (total %d)", items, total)
	}
}

func TestList_SortOrders(t *testing.T) {
	repo := testRepo(t)
	seedCatalog(t, repo)

	items, _, err := repo.List(ListOptions{Sort: "price-asc"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items[0].ID != "p1" || items[2].ID != "p2" {
		t.Errorf("price-asc order = %v", ids(items))
	}

	items, _, err = repo.List(ListOptions{Sort: "price-desc"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items[0].ID != "p2" {
		t.Errorf("price-desc order = %v", ids(items))
	}

	items, _, err = repo.List(ListOptions{Sort: "newest"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items[0].ID != "p2" {
		t.Errorf("newest order = %v", ids(items))
	}
}

func TestList_Pagination(t *testing.T) {
	repo := testRepo(t)
	seedCatalog(t, repo)

	items, total, err := repo.List(ListOptions{PageNumber: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want full match count", total)
	}
	if len(items) != 1 {
		t.Errorf("page 2 size 2 = %d items, want 1", len(items))
	}
}

func TestCreate_GeneratesIdentity(t *testing.T) {
	repo := testRepo(t)
	p := entity.Product{Name: "New Bangle", Category: "Bangles", Price: 500}
	if err := repo.Create(&p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == "" {
		t.Error("Create left ID empty")
	}
	got, err := repo.Get(p.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "New Bangle" {
		t.Errorf("got = %+v", got)
	}
}

func TestDelete_MissingRowIsNotFound(t *testing.T) {
	repo := testRepo(t)
	err := repo.Delete("ghost")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Delete missing = %v, want ErrRecordNotFound", err)
	}
}

func TestDistinctCategories(t *testing.T) {
	repo := testRepo(t)
	seedCatalog(t, repo)
	extra := entity.Product{ID: "p4", Name: "Another Choker", Category: "Wedding", Price: 100}
	if err := repo.Create(&extra); err != nil {
		t.Fatalf("seed: %v", err)
	}

	names, err := repo.DistinctCategories()
	if err != nil {
		t.Fatalf("DistinctCategories: %v", err)
	}
	if len(names) != 3 {
		t.Errorf("names = %v, want 3 distinct categories", names)
	}
}

func ids(items []entity.Product) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}
