package models

// Product is the read-only view model hydrated from the core backend.
// The gateway never mutates these; it only derives display values.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	// --- Pricing ---
	// The backend is inconsistent about which price field it populates,
	// so all three are carried and resolved in internal/pricing.
	Price              float64  `json:"price"`
	BasePrice          *float64 `json:"basePrice,omitempty"`
	OriginalPrice      *float64 `json:"originalPrice,omitempty"`
	DiscountPercentage float64  `json:"discountPercentage"`

	// --- Taxonomy ---
	Category     string `json:"category,omitempty"`
	Subcategory  string `json:"subcategory,omitempty"`
	Gender       string `json:"gender,omitempty"`
	IsOnSale     bool   `json:"isOnSale"`
	IsSet        bool   `json:"isSet"`
	IsNewArrival bool   `json:"isNewArrival"`

	// --- Media ---
	Images      []string            `json:"images,omitempty"`
	ColorImages map[string][]string `json:"colorImages,omitempty"` // color name -> gallery

	// --- Variants & options ---
	Variants []ProductVariant `json:"variants,omitempty"`
	Sizes    []string         `json:"sizes,omitempty"`
	Colors   []ProductColor   `json:"colors,omitempty"`
	Fits     []string         `json:"fits,omitempty"`

	// --- Descriptive content ---
	Purpose   string `json:"purpose,omitempty"`
	Features  string `json:"features,omitempty"`
	Materials string `json:"materials,omitempty"`
	Care      string `json:"care,omitempty"`

	// --- Rating aggregates ---
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
}

// ProductVariant is one size x color combination with its own SKU.
// PriceOverride, when set and positive, replaces the product-level price.
type ProductVariant struct {
	SKU           string   `json:"sku"`
	Size          string   `json:"size"`
	Color         string   `json:"color"`
	PriceOverride *float64 `json:"priceOverride,omitempty"`
	Stock         *int     `json:"stock,omitempty"`
}

// ProductColor is a selectable color option, optionally carrying its own media.
type ProductColor struct {
	Name      string   `json:"name"`
	Hex       string   `json:"hex,omitempty"`
	Thumbnail string   `json:"thumbnail,omitempty"`
	Gallery   []string `json:"gallery,omitempty"`
}
