package cart

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	entity "storefront.GO/model/entity"
	"storefront.GO/store/local"
	"storefront.GO/store/notify"
)

// StorageKey is the fixed client-local key the cart persists under.
const StorageKey = "cartItems"

// Store holds the session's cart lines, keyed by (product ID, variant).
// Every mutation re-serializes the whole line slice to the local store;
// persistence failures are logged and absorbed, never returned.
type Store struct {
	mu    sync.Mutex
	lines []entity.CartLine
	kv    *local.Store
}

// New builds a cart store and loads the persisted lines. A missing key and
// corrupt data both land on the empty default; corrupt data is logged.
func New(kv *local.Store) *Store {
	s := &Store{kv: kv}
	raw, found, err := kv.Get(StorageKey)
	if err != nil {
		log.Printf("cart: load failed, starting empty: %v", err)
		return s
	}
	if !found {
		return s
	}
	if err := json.Unmarshal(raw, &s.lines); err != nil {
		log.Printf("cart: corrupt saved data, starting empty: %v", err)
		s.lines = nil
	}
	return s
}

// Add puts one unit of a product in the cart. An existing (ID, variant) line
// has its quantity incremented instead of being duplicated.
func (s *Store) Add(p entity.Product, variant string) *notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entity.LineKey(p.ID, variant)
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity++
			s.persist()
			return notify.Success(fmt.Sprintf("%s added to cart", p.Name))
		}
	}
	s.lines = append(s.lines, entity.CartLine{Product: p, Variant: variant, Quantity: 1})
	s.persist()
	return notify.Success(fmt.Sprintf("%s added to cart", p.Name))
}

// SetQuantity replaces a line's quantity. Zero behaves as Remove; negative
// values clamp to zero. No upper bound is enforced.
func (s *Store) SetQuantity(productID, variant string, qty int) *notify.Notification {
	if qty < 0 {
		qty = 0
	}
	if qty == 0 {
		return s.Remove(productID, variant)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := entity.LineKey(productID, variant)
	for i := range s.lines {
		if s.lines[i].Key() == key {
			s.lines[i].Quantity = qty
			s.persist()
			return nil
		}
	}
	return nil
}

// Remove deletes the matching line. Absent lines no-op without notification.
func (s *Store) Remove(productID, variant string) *notify.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entity.LineKey(productID, variant)
	for i := range s.lines {
		if s.lines[i].Key() == key {
			name := s.lines[i].Product.Name
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return notify.Info(fmt.Sprintf("%s removed from cart", name))
		}
	}
	return nil
}

// Lines returns a copy of the current cart lines.
func (s *Store) Lines() []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItemCount is the sum of quantities over all lines.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of unit price × quantity over all lines.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, l := range s.lines {
		total += l.Product.Price * float64(l.Quantity)
	}
	return total
}

// persist serializes all lines under the fixed key. Callers hold the lock.
func (s *Store) persist() {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		log.Printf("cart: serialize failed: %v", err)
		return
	}
	if err := s.kv.Put(StorageKey, raw); err != nil {
		log.Printf("cart: persist failed: %v", err)
	}
}
