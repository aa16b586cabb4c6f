package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meravi-clothing/storefront-api/internal/middleware"
	"github.com/meravi-clothing/storefront-api/internal/models"
)

//
// --- Wishlist Handlers ---
//

// WishlistItemInput is the JSON body for POST /wishlist/items.
type WishlistItemInput struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Image     string  `json:"image"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	Fit       *string `json:"fit,omitempty"`
}

// AddToWishlist is the handler for POST /wishlist/items. Adding an id that is
// already saved is a no-op, so the heart toggle can fire freely.
func (h *Handlers) AddToWishlist(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var input WishlistItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	h.Wishlists.Add(sessionID, models.WishlistItem{
		ID:    input.ProductID,
		Name:  input.Name,
		Price: input.Price,
		Image: h.Backend.ResolveImageURL(input.Image),
		Color: input.Color,
		Size:  input.Size,
		Fit:   input.Fit,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Item added to wishlist",
		"wishlistCount": h.Wishlists.Count(sessionID),
	})
}

// RemoveFromWishlist is the handler for DELETE /wishlist/items/:id.
func (h *Handlers) RemoveFromWishlist(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	h.Wishlists.Remove(sessionID, c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"message":       "Item removed from wishlist",
		"wishlistCount": h.Wishlists.Count(sessionID),
	})
}

// GetWishlist is the handler for GET /wishlist.
func (h *Handlers) GetWishlist(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	items := h.Wishlists.Items(sessionID)
	if items == nil {
		items = []models.WishlistItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":         items,
		"wishlistCount": len(items),
	})
}
