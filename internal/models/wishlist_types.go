package models

// WishlistItem is a saved product reference. There is no quantity; the
// wishlist is a set keyed by product id.
type WishlistItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
	Color string  `json:"color,omitempty"`
	Size  string  `json:"size,omitempty"`
	Fit   *string `json:"fit,omitempty"`
}
