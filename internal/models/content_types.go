package models

import "time"

// Category as served by the backend's dashboard endpoint.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Position int    `json:"position,omitempty"`
}

// Subcategory belongs to a category by name.
type Subcategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// Blog is an article served on the content pages. URL is the backend's slug.
type Blog struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content,omitempty"`
	Image       string     `json:"image,omitempty"`
	Author      string     `json:"author,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// CarouselImage is one slide of the home-page hero carousel.
type CarouselImage struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	Link     string `json:"link,omitempty"`
	Title    string `json:"title,omitempty"`
	Position int    `json:"position,omitempty"`
}

// Review is a customer product review.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoreSettings is the public settings record. Currency is authoritative for
// the whole storefront and refreshed on an interval by the currency store.
type StoreSettings struct {
	Currency              string   `json:"currency"`
	FreeShippingThreshold *float64 `json:"freeShippingThreshold,omitempty"`
	ShippingCost          *float64 `json:"shippingCost,omitempty"`
}
