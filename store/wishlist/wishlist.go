package wishlist

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	entity "storefront.GO/model/entity"
	"storefront.GO/store/local"
	"storefront.GO/store/notify"
)

// StorageKey is the fixed client-local key the wishlist persists under.
const StorageKey = "wishlistItems"

// Store holds the session's wishlist: at most one entry per product ID.
// Same persistence discipline as the cart store.
type Store struct {
	mu      sync.Mutex
	entries []entity.WishlistEntry
	kv      *local.Store
}

// New builds a wishlist store and loads persisted entries, defaulting to
// empty on missing or corrupt data.
func New(kv *local.Store) *Store {
	s := &Store{kv: kv}
	raw, found, err := kv.Get(StorageKey)
	if err != nil {
		log.Printf("wishlist: load failed, starting empty: %v", err)
		return s
	}
	if !found {
		return s
	}
	if err := json.Unmarshal(raw, &s.entries); err != nil {
		log.Printf("wishlist: corrupt saved data, starting empty: %v", err)
		s.entries = nil
	}
	return s
}

// Toggle adds the product if absent, removes it if present. Two toggles
// always land back on the starting membership.
func (s *Store) Toggle(p entity.Product) *notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].Product.ID == p.ID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persist()
			return notify.Info(fmt.Sprintf("%s removed from wishlist", p.Name))
		}
	}
	s.entries = append(s.entries, entity.WishlistEntry{Product: p, AddedAt: time.Now()})
	s.persist()
	return notify.Success(fmt.Sprintf("%s added to wishlist", p.Name))
}

// IsMember reports whether a product ID is on the wishlist.
func (s *Store) IsMember(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.Product.ID == productID {
			return true
		}
	}
	return false
}

// Entries returns a copy of the current wishlist.
func (s *Store) Entries() []entity.WishlistEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.WishlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) persist() {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		log.Printf("wishlist: serialize failed: %v", err)
		return
	}
	if err := s.kv.Put(StorageKey, raw); err != nil {
		log.Printf("wishlist: persist failed: %v", err)
	}
}
