package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"storefront.GO/api"
	_ "storefront.GO/api/catalog"
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

func TestInit_LoadsActiveCatalog(t *testing.T) {
	gw, db := fixtureGateway(t)
	for _, p := range []entity.Product{
		{ID: "cat-init-1", Name: "Choker", Category: "Wedding", Price: 3000, InStock: true},
		{ID: "cat-init-2", Name: "Jhumka", Category: "Festival", Price: 2000, InStock: true},
		{ID: "cat-init-3", Name: "Sold Out", Category: "Casual", Price: 500, InStock: false},
	} {
		row := p
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	if err := db.Create(&entity.Category{ID: "c1", Name: "Wedding", IsActive: true}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	s := New(gw)
	s.Init(context.Background())

	snap := s.Snapshot()
	if snap.Status != StatusIdle {
		t.Fatalf("Status = %q (%s), want idle", snap.Status, snap.ErrorMessage)
	}
	if len(snap.Items) != 2 {
		t.Errorf("Items = %d, want the 2 in-stock products", len(snap.Items))
	}
	if len(snap.Categories) != 1 {
		t.Errorf("Categories = %d, want 1", len(snap.Categories))
	}
}

func TestRefresh_ProductFailureSetsErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/categories" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte("[]"))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	s := New(gateway.New(ts.URL))
	s.Refresh(context.Background(), gateway.ListParams{})

	snap := s.Snapshot()
	if snap.Status != StatusError {
		t.Fatalf("Status = %q, want error", snap.Status)
	}
	if snap.ErrorMessage == "" {
		t.Error("ErrorMessage is empty")
	}
}

func TestRefresh_CategoryFailureDegradesSilently(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/products" {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items":[{"_id":"p1","name":"Choker","category":"Wedding","price":3000}],"page":1,"totalPages":1,"totalCount":1}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	s := New(gateway.New(ts.URL))
	s.Refresh(context.Background(), gateway.ListParams{})

	snap := s.Snapshot()
	if snap.Status != StatusIdle {
		t.Fatalf("Status = %q (%s), want idle despite category failure", snap.Status, snap.ErrorMessage)
	}
	if len(snap.Items) != 1 {
		t.Errorf("Items = %d, want 1", len(snap.Items))
	}
	if len(snap.Categories) != 0 {
		t.Errorf("Categories = %d, want empty on degrade", len(snap.Categories))
	}
}

func TestSubscribe_NotifiesOnEveryTransition(t *testing.T) {
	gw, _ := fixtureGateway(t)
	s := New(gw)

	var statuses []Status
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		statuses = append(statuses, snap.Status)
	})

	s.Refresh(context.Background(), gateway.ListParams{})
	if len(statuses) != 2 || statuses[0] != StatusLoading || statuses[1] != StatusIdle {
		t.Fatalf("statuses = %v, want [loading idle]", statuses)
	}

	unsubscribe()
	s.Refresh(context.Background(), gateway.ListParams{})
	if len(statuses) != 2 {
		t.Errorf("listener fired after unsubscribe: %v", statuses)
	}
}

func TestDebouncer_OnlyLastTriggerRuns(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	fired := make(chan string, 3)

	d.Trigger(func() { fired <- "first" })
	d.Trigger(func() { fired <- "second" })
	d.Trigger(func() { fired <- "third" })

	select {
	case got := <-fired:
		if got != "third" {
			t.Fatalf("fired %q, want only the last trigger", got)
		}
	case <-time.After(time.Second):
		t.Fatal("debounced trigger never fired")
	}
	select {
	case got := <-fired:
		t.Fatalf("extra trigger fired: %q", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	fired := make(chan struct{}, 1)
	d.Trigger(func() { fired <- struct{}{} })
	d.Stop()

	select {
	case <-fired:
		t.Fatal("stopped trigger still fired")
	case <-time.After(100 * time.Millisecond):
	}
}
