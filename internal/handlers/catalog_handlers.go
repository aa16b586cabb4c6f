package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meravi-clothing/storefront-api/internal/models"
)

//
// --- Catalog Handlers ---
//
// Every catalog page fetches the full public catalog once and filters it in
// memory, the same way the storefront pages do. A backend failure degrades to
// an empty list so the page renders its empty state, never an error page.
//

// normalizeProductImages rewrites every stored image path to an absolute URL.
func (h *Handlers) normalizeProductImages(p *models.Product) {
	for i, img := range p.Images {
		p.Images[i] = h.Backend.ResolveImageURL(img)
	}
	for color, gallery := range p.ColorImages {
		for i, img := range gallery {
			gallery[i] = h.Backend.ResolveImageURL(img)
		}
		p.ColorImages[color] = gallery
	}
	for i := range p.Colors {
		p.Colors[i].Thumbnail = h.Backend.ResolveImageURL(p.Colors[i].Thumbnail)
		for j, img := range p.Colors[i].Gallery {
			p.Colors[i].Gallery[j] = h.Backend.ResolveImageURL(img)
		}
	}
}

// fetchCatalog pulls the full catalog, degrading to empty on any failure.
func (h *Handlers) fetchCatalog(c *gin.Context) []models.Product {
	products, err := h.Backend.AllProducts(c.Request.Context())
	if err != nil {
		log.Printf("catalog: fetch all products failed: %v", err)
		return []models.Product{}
	}
	for i := range products {
		h.normalizeProductImages(&products[i])
	}
	return products
}

// matchesFilter applies the collection page's query filters.
func matchesFilter(p *models.Product, category, subcategory, gender string) bool {
	if category != "" && !strings.EqualFold(p.Category, category) {
		return false
	}
	if subcategory != "" && !strings.EqualFold(p.Subcategory, subcategory) {
		return false
	}
	if gender != "" && !strings.EqualFold(p.Gender, gender) {
		return false
	}
	return true
}

// GetCollection is the handler for GET /collection.
// Optional query filters: category, subcategory, gender.
func (h *Handlers) GetCollection(c *gin.Context) {
	category := c.Query("category")
	subcategory := c.Query("subcategory")
	gender := c.Query("gender")

	filtered := []models.Product{}
	for _, p := range h.fetchCatalog(c) {
		if matchesFilter(&p, category, subcategory, gender) {
			filtered = append(filtered, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": filtered,
		"total":    len(filtered),
	})
}

// GetSaleProducts is the handler for GET /sale.
func (h *Handlers) GetSaleProducts(c *gin.Context) {
	sale := []models.Product{}
	for _, p := range h.fetchCatalog(c) {
		if p.IsOnSale || p.DiscountPercentage > 0 {
			sale = append(sale, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": sale,
		"total":    len(sale),
	})
}

// GetSets is the handler for GET /sets.
func (h *Handlers) GetSets(c *gin.Context) {
	sets := []models.Product{}
	for _, p := range h.fetchCatalog(c) {
		if p.IsSet {
			sets = append(sets, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": sets,
		"total":    len(sets),
	})
}

// GetNewArrivals is the handler for GET /new-arrivals.
func (h *Handlers) GetNewArrivals(c *gin.Context) {
	arrivals := []models.Product{}
	for _, p := range h.fetchCatalog(c) {
		if p.IsNewArrival {
			arrivals = append(arrivals, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"products": arrivals,
		"total":    len(arrivals),
	})
}

// GetCategories is the handler for GET /categories. It combines the category
// tiles with their subcategories; either fetch failing degrades to empty.
func (h *Handlers) GetCategories(c *gin.Context) {
	categories, err := h.Backend.DashboardCategories(c.Request.Context())
	if err != nil {
		log.Printf("catalog: fetch categories failed: %v", err)
		categories = []models.Category{}
	}
	for i := range categories {
		categories[i].Image = h.Backend.ResolveImageURL(categories[i].Image)
	}

	subcategories, err := h.Backend.Subcategories(c.Request.Context())
	if err != nil {
		log.Printf("catalog: fetch subcategories failed: %v", err)
		subcategories = []models.Subcategory{}
	}
	for i := range subcategories {
		subcategories[i].Image = h.Backend.ResolveImageURL(subcategories[i].Image)
	}

	c.JSON(http.StatusOK, gin.H{
		"categories":    categories,
		"subcategories": subcategories,
	})
}

// SearchSuggestions is the handler for GET /search/suggestions?q=&limit=.
// The request context cancels the backend call when the client abandons the
// query, so a superseded keystroke does not waste a round trip.
func (h *Handlers) SearchSuggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusOK, gin.H{"suggestions": []models.Product{}})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit <= 0 {
		limit = 5
	}

	suggestions, err := h.Backend.SearchProducts(c.Request.Context(), query, limit)
	if err != nil {
		log.Printf("catalog: search %q failed: %v", query, err)
		suggestions = []models.Product{}
	}
	for i := range suggestions {
		h.normalizeProductImages(&suggestions[i])
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
