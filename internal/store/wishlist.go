package store

import (
	"log"
	"sync"

	"github.com/meravi-clothing/storefront-api/internal/models"
)

// WishlistPersistence is the durable backing for wishlists.
type WishlistPersistence interface {
	LoadWishlist(sessionID string) ([]models.WishlistItem, error)
	SaveWishlist(sessionID string, items []models.WishlistItem) error
}

// WishlistStore holds each session's saved products as a set keyed by product
// id. Add is idempotent; there are no quantities and no remote sync.
type WishlistStore struct {
	mu      sync.Mutex
	lists   map[string][]models.WishlistItem
	loaded  map[string]bool
	persist WishlistPersistence
}

// NewWishlistStore builds a WishlistStore. persist may be nil in tests.
func NewWishlistStore(persist WishlistPersistence) *WishlistStore {
	return &WishlistStore{
		lists:   make(map[string][]models.WishlistItem),
		loaded:  make(map[string]bool),
		persist: persist,
	}
}

func (s *WishlistStore) ensureLoaded(sessionID string) {
	if s.loaded[sessionID] {
		return
	}
	s.loaded[sessionID] = true
	if s.persist == nil {
		return
	}
	items, err := s.persist.LoadWishlist(sessionID)
	if err != nil {
		log.Printf("wishlist: failed to load session %s: %v", sessionID, err)
		return
	}
	if items != nil {
		s.lists[sessionID] = items
	}
}

func (s *WishlistStore) save(sessionID string) {
	if s.persist == nil {
		return
	}
	if err := s.persist.SaveWishlist(sessionID, s.lists[sessionID]); err != nil {
		log.Printf("wishlist: failed to persist session %s: %v", sessionID, err)
	}
}

// Add saves an item. Adding an id that is already present is a no-op.
func (s *WishlistStore) Add(sessionID string, item models.WishlistItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	for _, existing := range s.lists[sessionID] {
		if existing.ID == item.ID {
			return
		}
	}
	s.lists[sessionID] = append(s.lists[sessionID], item)
	s.save(sessionID)
}

// Remove deletes the item with the given product id, if present.
func (s *WishlistStore) Remove(sessionID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	items := s.lists[sessionID]
	for i := range items {
		if items[i].ID == id {
			s.lists[sessionID] = append(items[:i], items[i+1:]...)
			s.save(sessionID)
			return
		}
	}
}

// Contains reports whether a product id is in the session's wishlist.
func (s *WishlistStore) Contains(sessionID, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	for _, item := range s.lists[sessionID] {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the session's wishlist.
func (s *WishlistStore) Items(sessionID string) []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)

	items := make([]models.WishlistItem, len(s.lists[sessionID]))
	copy(items, s.lists[sessionID])
	return items
}

// Count is the number of saved items.
func (s *WishlistStore) Count(sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(sessionID)
	return len(s.lists[sessionID])
}
