package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/meravi-clothing/storefront-api/internal/middleware"
	"github.com/meravi-clothing/storefront-api/internal/models"
	"github.com/meravi-clothing/storefront-api/internal/pricing"
	"github.com/meravi-clothing/storefront-api/internal/store"
)

//
// --- Cart Handlers ---
//
// Line identity is always the full composite key (product+size+color, or
// bundle+pack+size+length+color). Remove and update act on that key, so one
// variant of a product never takes its siblings with it.
//

// AddToCartInput is the JSON body for adding a plain product line.
type AddToCartInput struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,gte=1,lte=10"`
	Image     string  `json:"image"`
	Color     string  `json:"color"`
	Size      string  `json:"size"`
	Fit       *string `json:"fit,omitempty"`
}

// AddToCart is the handler for POST /cart/items.
func (h *Handlers) AddToCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	line := h.Carts.AddItem(sessionID, models.CartLineItem{
		ID:       input.ProductID,
		Name:     input.Name,
		Price:    input.Price,
		Quantity: input.Quantity,
		Image:    h.Backend.ResolveImageURL(input.Image),
		Color:    input.Color,
		Size:     input.Size,
		Fit:      input.Fit,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Item added to cart",
		"item":      line,
		"dedupKey":  line.DedupKey(),
		"cartCount": h.Carts.Count(sessionID),
	})
}

// AddBundleToCartInput is the JSON body for adding a bundle line.
type AddBundleToCartInput struct {
	BundleID   string  `json:"bundleId" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"gte=0"`
	Quantity   int     `json:"quantity" binding:"required,gte=1,lte=10"`
	Image      string  `json:"image"`
	PackName   string  `json:"packName" binding:"required"`
	PackPieces int     `json:"packPieces" binding:"gte=1"`
	Size       string  `json:"size"`
	Length     string  `json:"length"`
	Color      string  `json:"color"`
	DealTag    string  `json:"dealTag"`
}

// AddBundleToCart is the handler for POST /cart/bundles.
func (h *Handlers) AddBundleToCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var input AddBundleToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	line := h.Carts.AddItem(sessionID, models.CartLineItem{
		ID:       input.BundleID,
		Name:     input.Name,
		Price:    input.Price,
		Quantity: input.Quantity,
		Image:    h.Backend.ResolveImageURL(input.Image),
		Color:    input.Color,
		Size:     input.Size,
		IsBundle: true,
		BundlePack: &models.BundlePack{
			Name:   input.PackName,
			Pieces: input.PackPieces,
		},
		Length:        input.Length,
		BundleDealTag: input.DealTag,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Bundle added to cart",
		"item":      line,
		"dedupKey":  line.DedupKey(),
		"cartCount": h.Carts.Count(sessionID),
	})
}

// GetCart is the handler for GET /cart. It returns the lines with derived
// totals and the free-shipping state. The shipping rule is refreshed from the
// backend on each view and cached in the store for cross-page reuse; a fetch
// failure falls back to the cached rule, then to the pricing defaults.
func (h *Handlers) GetCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	items := h.Carts.Items(sessionID)
	subtotal := h.Carts.Subtotal(sessionID)

	rule, err := h.Backend.CalculateShipping(c.Request.Context(), subtotal)
	if err != nil {
		log.Printf("cart: shipping rule fetch failed: %v", err)
	} else {
		h.Carts.SetShippingRule(pricing.ShippingFor(subtotal, rule.FreeShippingThreshold, rule.ShippingCost))
	}

	var threshold, cost float64
	if cached := h.Carts.ShippingRule(); cached != nil {
		threshold = cached.FreeShippingThreshold
		cost = cached.ShippingCost
	}
	shipping := pricing.ShippingFor(subtotal, threshold, cost)

	if items == nil {
		items = []models.CartLineItem{}
	}

	c.JSON(http.StatusOK, gin.H{
		"items":            items,
		"cartCount":        h.Carts.Count(sessionID),
		"subtotal":         subtotal,
		"subtotalDisplay":  h.Currency.FormatPrice(subtotal),
		"currency":         h.Currency.Code(),
		"shipping":         shipping,
	})
}

// UpdateCartItemInput is the JSON body for PATCH /cart/items.
type UpdateCartItemInput struct {
	DedupKey string `json:"dedupKey" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// UpdateCartItem is the handler for PATCH /cart/items. Quantities above the
// maximum clamp to it; below the minimum is rejected, matching the disabled
// decrement button at quantity 1.
func (h *Handlers) UpdateCartItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	var input UpdateCartItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	line, err := h.Carts.UpdateQuantity(sessionID, input.DedupKey, input.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrQuantityTooLow):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Quantity cannot go below 1"})
		case errors.Is(err, store.ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cart item quantity updated",
		"item":      line,
		"cartCount": h.Carts.Count(sessionID),
	})
}

// RemoveCartItem is the handler for DELETE /cart/items. The line is addressed
// by its dedup key (query param "key"), or by its parts (id, size, color, and
// for bundles pack, length) when the caller has not kept the key around.
func (h *Handlers) RemoveCartItem(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	key := c.Query("key")
	if key == "" {
		id := c.Query("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "key or id is required"})
			return
		}
		if c.Query("pack") != "" {
			key = models.BundleDedupKey(id, c.Query("pack"), c.Query("size"), c.Query("length"), c.Query("color"))
		} else {
			li := models.CartLineItem{ID: id, Size: c.Query("size"), Color: c.Query("color")}
			key = li.DedupKey()
		}
	}

	if err := h.Carts.RemoveLine(sessionID, key); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found in cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Cart item removed",
		"cartCount": h.Carts.Count(sessionID),
	})
}

// IsBundleInCart is the handler for GET /cart/contains-bundle. The bundle
// page polls this to keep its add button disabled after an add.
func (h *Handlers) IsBundleInCart(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	bundleID := c.Query("bundleId")
	key := c.Query("key")
	if bundleID == "" || key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bundleId and key are required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inCart": h.Carts.IsBundleInCart(sessionID, bundleID, key),
	})
}
