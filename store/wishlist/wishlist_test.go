package wishlist

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "storefront.GO/model/entity"
	"storefront.GO/store/local"
	"storefront.GO/store/notify"
)

func testKV(t *testing.T) *local.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.ClientKV{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return local.New(db)
}

func TestToggle_AddThenRemove(t *testing.T) {
	s := New(testKV(t))
	p := entity.Product{ID: "p1", Name: "Jhumka", Price: 2000}

	n := s.Toggle(p)
	if n == nil || n.Level != notify.LevelSuccess {
		t.Fatalf("first toggle = %v, want success", n)
	}
	if !s.IsMember("p1") {
		t.Fatal("IsMember after add: want true")
	}

	n = s.Toggle(p)
	if n == nil || n.Level != notify.LevelInfo {
		t.Fatalf("second toggle = %v, want info", n)
	}
	if s.IsMember("p1") {
		t.Error("IsMember after remove: want false")
	}
}

func TestToggle_TwoCallsRestoreMembership(t *testing.T) {
	s := New(testKV(t))
	p := entity.Product{ID: "p1", Name: "Jhumka"}

	before := s.IsMember("p1")
	s.Toggle(p)
	s.Toggle(p)
	if s.IsMember("p1") != before {
		t.Error("two toggles must restore the starting membership")
	}
}

func TestToggle_NoDuplicateEntries(t *testing.T) {
	s := New(testKV(t))
	p := entity.Product{ID: "p1", Name: "Jhumka"}
	s.Toggle(p)
	s.Toggle(p)
	s.Toggle(p)
	if len(s.Entries()) != 1 {
		t.Errorf("entries = %d, want 1", len(s.Entries()))
	}
}

func TestPersistence_SurvivesReload(t *testing.T) {
	kv := testKV(t)
	s := New(kv)
	s.Toggle(entity.Product{ID: "p1", Name: "Jhumka"})

	reloaded := New(kv)
	if !reloaded.IsMember("p1") {
		t.Error("membership lost on reload")
	}
}

func TestLoad_CorruptDataDefaultsToEmpty(t *testing.T) {
	kv := testKV(t)
	if err := kv.Put(StorageKey, []byte("not json at all")); err != nil {
		t.Fatalf("seed corrupt data: %v", err)
	}
	s := New(kv)
	if len(s.Entries()) != 0 {
		t.Error("corrupt data should default to empty wishlist")
	}
}
