package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meravi-clothing/storefront-api/internal/backend"
	"github.com/meravi-clothing/storefront-api/internal/middleware"
	"github.com/meravi-clothing/storefront-api/internal/models"
	"github.com/meravi-clothing/storefront-api/internal/pricing"
)

//
// --- Product Detail Handlers ---
//

// GetProductDetail is the handler for GET /products/:id.
// Optional query params size and color preselect a variant; the response
// carries the resolved variant, derived prices, per-color images, and the
// formatted display price in the active currency.
func (h *Handlers) GetProductDetail(c *gin.Context) {
	id := c.Param("id")

	product, err := h.Backend.ProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Printf("product: fetch %s failed: %v", id, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	h.normalizeProductImages(product)

	// Default selection: first size and first color, like the detail page.
	size := c.Query("size")
	if size == "" && len(product.Sizes) > 0 {
		size = product.Sizes[0]
	}
	color := c.Query("color")
	if color == "" && len(product.Colors) > 0 {
		color = product.Colors[0].Name
	}

	resolved := pricing.ResolveVariant(product, size, color)

	// Reviews degrade to empty; the detail page renders without them.
	reviews, err := h.Backend.ProductReviews(c.Request.Context(), id)
	if err != nil {
		log.Printf("product: fetch reviews for %s failed: %v", id, err)
		reviews = []models.Review{}
	}

	sessionID := middleware.SessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"product":        product,
		"selectedSize":   size,
		"selectedColor":  color,
		"variant":        resolved,
		"displayPrice":   h.Currency.FormatPrice(resolved.FinalPrice),
		"currency":       h.Currency.Code(),
		"reviews":        reviews,
		"inWishlist":     sessionID != "" && h.Wishlists.Contains(sessionID, id),
	})
}

// CreateReviewInput is the JSON body for POST /products/:id/reviews.
type CreateReviewInput struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// CreateReview is the handler for POST /products/:id/reviews.
func (h *Handlers) CreateReview(c *gin.Context) {
	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	err := h.Backend.CreateReview(c.Request.Context(), backend.CreateReviewInput{
		ProductID: c.Param("id"),
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
	})
	if err != nil {
		log.Printf("product: create review failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to submit review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted"})
}
