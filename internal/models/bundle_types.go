package models

// Bundle is a promotional grouping sold as one purchasable unit.
// Hydrated from the core backend; read-only on this side.
type Bundle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`

	// BasePrice is the undiscounted reference price used for savings display.
	BasePrice float64 `json:"basePrice"`

	Images []string `json:"images,omitempty"`

	// --- Selectable axes ---
	PackOptions []PackOption       `json:"packOptions,omitempty"`
	Colors      []BundleColor      `json:"colors,omitempty"`
	Sizes       []string           `json:"sizes,omitempty"`
	Lengths     []string           `json:"lengths,omitempty"`
	// SizePriceVariation is a flat additive adjustment keyed by size.
	SizePriceVariation map[string]float64 `json:"sizePriceVariation,omitempty"`

	DealTag string `json:"dealTag,omitempty"`
}

// PackOption specifies how many pieces a bundle choice includes and its price.
type PackOption struct {
	Name         string  `json:"name"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"totalPrice"`
	PerItemPrice float64 `json:"perItemPrice"`
}

// BundleColor is a bundle color choice with optional media and badge.
type BundleColor struct {
	Name        string   `json:"name"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
	Description string   `json:"description,omitempty"`
	Badge       string   `json:"badge,omitempty"`
}
