package store

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/meravi-clothing/storefront-api/internal/models"
)

// Cart operation errors.
var (
	// ErrQuantityTooLow is returned when an update asks for a quantity below
	// the minimum. Going below 1 never removes the line; removal is explicit.
	ErrQuantityTooLow = errors.New("cart: quantity below minimum")
	// ErrLineNotFound is returned when no line matches the given key.
	ErrLineNotFound = errors.New("cart: line item not found")
)

// CartPersistence is the durable backing a CartStore writes through to.
// *Persistence implements it over MySQL.
type CartPersistence interface {
	LoadCart(sessionID string) ([]models.CartLineItem, error)
	SaveCart(sessionID string, items []models.CartLineItem) error
}

// CartStore holds every session's cart lines plus the last-fetched shipping
// rule, shared across pages. In-memory state is authoritative for a running
// process; each mutation is written through to persistence so a session
// survives a restart (the localStorage role in the original storefront).
type CartStore struct {
	mu      sync.Mutex
	carts   map[string][]models.CartLineItem
	loaded  map[string]bool
	persist CartPersistence

	shippingRule *models.ShippingInfo
}

// NewCartStore builds a CartStore. persist may be nil in tests.
func NewCartStore(persist CartPersistence) *CartStore {
	return &CartStore{
		carts:   make(map[string][]models.CartLineItem),
		loaded:  make(map[string]bool),
		persist: persist,
	}
}

// ensureLoaded pulls a session's persisted cart into memory on first touch.
// Must be called with the lock held. A load failure is logged and the session
// starts empty; availability wins over strictness here.
func (s *CartStore) ensureLoaded(sessionID string) {
	if s.loaded[sessionID] {
		return
	}
	s.loaded[sessionID] = true
	if s.persist == nil {
		return
	}
	items, err := s.persist.LoadCart(sessionID)
	if err != nil {
		log.Printf("cart: failed to load session %s: %v", sessionID, err)
		return
	}
	if items != nil {
		s.carts[sessionID] = items
	}
}

// save writes the session's lines through to the database. Lock held.
func (s *CartStore) save(sessionID string) {
	if s.persist == nil {
		return
	}
	if err := s.persist.SaveCart(sessionID, s.carts[sessionID]); err != nil {
		log.Printf("cart: failed to persist session %s: %v", sessionID, err)
	}
}

// clampQuantity bounds a quantity into [MinQuantity, MaxQuantity].
func clampQuantity(q int) int {
	if q < models.MinQuantity {
		return models.MinQuantity
	}
	if q > models.MaxQuantity {
		return models.MaxQuantity
	}
	return q
}

// AddItem appends a line for a plain product or a bundle. When a line with
// the same dedup key exists, quantities are merged (and clamped) instead of
// creating a duplicate line.
func (s *CartStore) AddItem(sessionID string, item models.CartLineItem) models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	item.Quantity = clampQuantity(item.Quantity)
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}

	key := item.DedupKey()
	items := s.carts[sessionID]
	for i := range items {
		if items[i].DedupKey() == key {
			items[i].Quantity = clampQuantity(items[i].Quantity + item.Quantity)
			s.save(sessionID)
			return items[i]
		}
	}

	s.carts[sessionID] = append(items, item)
	s.save(sessionID)
	return item
}

// IsBundleInCart reports whether a bundle configuration is already a line in
// the session's cart. The detail page uses this to disable its add button.
func (s *CartStore) IsBundleInCart(sessionID, bundleID, compositeKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	for _, li := range s.carts[sessionID] {
		if !li.IsBundle || li.ID != bundleID {
			continue
		}
		if li.DedupKey() == compositeKey {
			return true
		}
	}
	return false
}

// RemoveLine deletes the line matching the full dedup key. Removal is
// variant-precise: other lines sharing the same product id are untouched.
func (s *CartStore) RemoveLine(sessionID, dedupKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	items := s.carts[sessionID]
	for i := range items {
		if items[i].DedupKey() == dedupKey {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
			s.save(sessionID)
			return nil
		}
	}
	return ErrLineNotFound
}

// UpdateQuantity sets a line's quantity, clamped to the maximum. A request
// below the minimum is rejected with ErrQuantityTooLow rather than removing
// the line.
func (s *CartStore) UpdateQuantity(sessionID, dedupKey string, quantity int) (models.CartLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	if quantity < models.MinQuantity {
		return models.CartLineItem{}, ErrQuantityTooLow
	}
	if quantity > models.MaxQuantity {
		quantity = models.MaxQuantity
	}

	items := s.carts[sessionID]
	for i := range items {
		if items[i].DedupKey() == dedupKey {
			items[i].Quantity = quantity
			s.save(sessionID)
			return items[i], nil
		}
	}
	return models.CartLineItem{}, ErrLineNotFound
}

// Items returns a copy of the session's lines in insertion order.
func (s *CartStore) Items(sessionID string) []models.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	items := make([]models.CartLineItem, len(s.carts[sessionID]))
	copy(items, s.carts[sessionID])
	return items
}

// Count is the sum of all line quantities.
func (s *CartStore) Count(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	total := 0
	for _, li := range s.carts[sessionID] {
		total += li.Quantity
	}
	return total
}

// Subtotal is the sum of price x quantity across all lines.
func (s *CartStore) Subtotal(sessionID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	var subtotal float64
	for _, li := range s.carts[sessionID] {
		subtotal += li.LineTotal()
	}
	return subtotal
}

// Clear empties the session's cart, e.g. after a successful checkout handoff.
func (s *CartStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	s.carts[sessionID] = nil
	s.save(sessionID)
}

// SetShippingRule caches the last shipping rule fetched from the backend so
// every page shares one source instead of refetching.
func (s *CartStore) SetShippingRule(info models.ShippingInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shippingRule = &info
}

// ShippingRule returns the cached rule, or nil when none was fetched yet;
// callers then fall back to the defaults in internal/pricing.
func (s *CartStore) ShippingRule() *models.ShippingInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shippingRule == nil {
		return nil
	}
	rule := *s.shippingRule
	return &rule
}
