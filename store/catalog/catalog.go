package catalog

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"storefront.GO/config"
	"storefront.GO/gateway"
	entity "storefront.GO/model/entity"
)

// Status is the catalog store's only coordination mechanism. Overlapping
// refreshes are not cancelled; the last response to resolve wins.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
)

// Snapshot is the immutable view handed to subscribers.
type Snapshot struct {
	Items        []entity.Product
	Categories   []entity.Category
	Status       Status
	ErrorMessage string
}

// Store caches the last-fetched product and category collections. It is a
// cache rebuilt on each mount, not a source of truth.
type Store struct {
	mu        sync.Mutex
	gw        *gateway.Gateway
	items     []entity.Product
	cats      []entity.Category
	status    Status
	errMsg    string
	listeners map[int]func(Snapshot)
	nextID    int
}

func New(gw *gateway.Gateway) *Store {
	return &Store{
		gw:        gw,
		status:    StatusIdle,
		listeners: make(map[int]func(Snapshot)),
	}
}

// Subscribe registers a listener called after every state change. The
// returned function unsubscribes it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Init fetches the active catalog: products and categories concurrently,
// requesting a page size large enough to return the whole active catalog.
// A product fetch failure surfaces as error state; a category fetch failure
// degrades silently to an empty category list.
func (s *Store) Init(ctx context.Context) {
	config.LoadAppConfig()
	s.Refresh(ctx, gateway.ListParams{
		Status:   "active",
		PageSize: config.AppConfig.CatalogPageSize,
	})
}

// Refresh re-fetches with caller-supplied override parameters (the admin
// listing passes its own pagination/sort/category filters).
func (s *Store) Refresh(ctx context.Context, params gateway.ListParams) {
	s.setLoading()

	var (
		page *gateway.ProductPage
		cats []entity.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.gw.ListProducts(gctx, params)
		if err != nil {
			return err
		}
		page = p
		return nil
	})
	g.Go(func() error {
		c, err := s.gw.ListCategories(gctx)
		if err != nil {
			// catalog works without categories
			log.Printf("catalog: category fetch failed, degrading to empty list: %v", err)
			return nil
		}
		cats = c
		return nil
	})

	if err := g.Wait(); err != nil {
		s.setError(err.Error())
		return
	}
	s.setLoaded(page.Items, cats)
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	items := make([]entity.Product, len(s.items))
	copy(items, s.items)
	cats := make([]entity.Category, len(s.cats))
	copy(cats, s.cats)
	return Snapshot{Items: items, Categories: cats, Status: s.status, ErrorMessage: s.errMsg}
}

func (s *Store) setLoading() {
	s.mu.Lock()
	s.status = StatusLoading
	s.errMsg = ""
	snap := s.snapshotLocked()
	fns := s.listenersLocked()
	s.mu.Unlock()
	notifyAll(fns, snap)
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.status = StatusError
	s.errMsg = msg
	snap := s.snapshotLocked()
	fns := s.listenersLocked()
	s.mu.Unlock()
	notifyAll(fns, snap)
}

func (s *Store) setLoaded(items []entity.Product, cats []entity.Category) {
	s.mu.Lock()
	s.status = StatusIdle
	s.errMsg = ""
	s.items = items
	if cats != nil {
		s.cats = cats
	} else {
		s.cats = nil
	}
	snap := s.snapshotLocked()
	fns := s.listenersLocked()
	s.mu.Unlock()
	notifyAll(fns, snap)
}

func (s *Store) listenersLocked() []func(Snapshot) {
	fns := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	return fns
}

func notifyAll(fns []func(Snapshot), snap Snapshot) {
	for _, fn := range fns {
		fn(snap)
	}
}
