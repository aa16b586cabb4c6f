package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/meravi-clothing/storefront-api/internal/models"
)

// Persistence is the durable backing for the session stores. Each session's
// cart and wishlist are written through as one JSON document per session,
// mirroring how the browser storefront kept them in localStorage. The
// storefront_settings table holds the cached currency code.
type Persistence struct {
	DB *sql.DB
}

// NewPersistence wraps an open connection pool.
func NewPersistence(db *sql.DB) *Persistence {
	return &Persistence{DB: db}
}

// EnsureSchema creates the session tables if they do not exist yet.
func (p *Persistence) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS session_carts (
			session_id VARCHAR(64) PRIMARY KEY,
			items JSON NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS session_wishlists (
			session_id VARCHAR(64) PRIMARY KEY,
			items JSON NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS storefront_settings (
			name VARCHAR(64) PRIMARY KEY,
			value VARCHAR(255) NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := p.DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadCart returns the persisted cart lines for a session, or nil when the
// session has never been saved.
func (p *Persistence) LoadCart(sessionID string) ([]models.CartLineItem, error) {
	return p.loadItems("session_carts", sessionID)
}

// SaveCart writes a session's cart through to the database.
func (p *Persistence) SaveCart(sessionID string, items []models.CartLineItem) error {
	return p.saveItems("session_carts", sessionID, items)
}

// LoadWishlist returns the persisted wishlist for a session.
func (p *Persistence) LoadWishlist(sessionID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	raw, err := p.loadRaw("session_wishlists", sessionID)
	if err != nil || raw == nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveWishlist writes a session's wishlist through to the database.
func (p *Persistence) SaveWishlist(sessionID string, items []models.WishlistItem) error {
	if items == nil {
		items = []models.WishlistItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return p.saveRaw("session_wishlists", sessionID, itemsJSON)
}

// LoadCurrency returns the cached currency code, or "" when none is stored.
func (p *Persistence) LoadCurrency() (string, error) {
	var code string
	err := p.DB.QueryRow("SELECT value FROM storefront_settings WHERE name = 'currency'").Scan(&code)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

// SaveCurrency caches the currency code.
func (p *Persistence) SaveCurrency(code string) error {
	query := `
		INSERT INTO storefront_settings (name, value, updated_at)
		VALUES ('currency', ?, ?)
		ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = VALUES(updated_at)`
	_, err := p.DB.Exec(query, code, time.Now())
	return err
}

func (p *Persistence) loadItems(table, sessionID string) ([]models.CartLineItem, error) {
	raw, err := p.loadRaw(table, sessionID)
	if err != nil || raw == nil {
		return nil, err
	}
	var items []models.CartLineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *Persistence) saveItems(table, sessionID string, items []models.CartLineItem) error {
	if items == nil {
		items = []models.CartLineItem{}
	}
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return p.saveRaw(table, sessionID, itemsJSON)
}

func (p *Persistence) loadRaw(table, sessionID string) ([]byte, error) {
	var raw []byte
	err := p.DB.QueryRow("SELECT items FROM "+table+" WHERE session_id = ?", sessionID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func (p *Persistence) saveRaw(table string, sessionID string, itemsJSON []byte) error {
	query := `
		INSERT INTO ` + table + ` (session_id, items, updated_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE items = VALUES(items), updated_at = VALUES(updated_at)`
	_, err := p.DB.Exec(query, sessionID, itemsJSON, time.Now())
	return err
}
