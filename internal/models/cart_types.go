package models

import (
	"strings"
	"time"
)

// Cart quantity bounds. Quantity on a line is always within [MinQuantity, MaxQuantity].
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// CartLineItem is one purchasable line in a session cart. Product details
// (name, price, image) are snapshotted onto the line at add time, so a later
// catalog change does not rewrite an existing cart.
type CartLineItem struct {
	ID       string  `json:"id"` // product or bundle id
	Name     string  `json:"name"`
	Price    float64 `json:"price"` // unit price, discount already applied
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
	Color    string  `json:"color,omitempty"`
	Size     string  `json:"size,omitempty"`
	Fit      *string `json:"fit,omitempty"`

	// --- Bundle-only fields ---
	IsBundle      bool        `json:"isBundle,omitempty"`
	BundlePack    *BundlePack `json:"bundlePack,omitempty"`
	Length        string      `json:"length,omitempty"`
	BundleDealTag string      `json:"bundleDealTag,omitempty"`

	AddedAt time.Time `json:"addedAt"`
}

// BundlePack describes which pack option a bundle line was added with.
type BundlePack struct {
	Name   string `json:"name"`
	Pieces int    `json:"pieces"`
}

// DedupKey is the composite identity of a cart line. Two add actions with the
// same key refer to the same line. Plain products key on (id, size, color);
// bundles key on (id, pack, size, length, color).
func (li *CartLineItem) DedupKey() string {
	if li.IsBundle {
		packName := ""
		if li.BundlePack != nil {
			packName = li.BundlePack.Name
		}
		return BundleDedupKey(li.ID, packName, li.Size, li.Length, li.Color)
	}
	return strings.Join([]string{li.ID, li.Size, li.Color}, "|")
}

// BundleDedupKey builds the composite key for a bundle configuration.
func BundleDedupKey(bundleID, packName, size, length, colorName string) string {
	return strings.Join([]string{bundleID, packName, size, length, colorName}, "|")
}

// LineTotal is price x quantity for one line.
func (li *CartLineItem) LineTotal() float64 {
	return li.Price * float64(li.Quantity)
}

// ShippingInfo is the last-fetched free-shipping rule, cached in the cart
// store for cross-page reuse. A nil ShippingInfo means callers fall back to
// the defaults in internal/pricing.
type ShippingInfo struct {
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	ShippingCost          float64 `json:"shippingCost"`
	RemainingForFree      float64 `json:"remainingForFreeShipping"`
	IsFreeShipping        bool    `json:"isFreeShipping"`
}
