package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/meravi-clothing/storefront-api/internal/backend"
	"github.com/meravi-clothing/storefront-api/internal/middleware"
	"github.com/meravi-clothing/storefront-api/internal/models"
	"github.com/meravi-clothing/storefront-api/internal/pricing"
)

//
// --- Bundle Handlers ---
//

// normalizeBundleImages rewrites a bundle's image paths to absolute URLs.
func (h *Handlers) normalizeBundleImages(b *models.Bundle) {
	for i, img := range b.Images {
		b.Images[i] = h.Backend.ResolveImageURL(img)
	}
	for i := range b.Colors {
		b.Colors[i].Thumbnail = h.Backend.ResolveImageURL(b.Colors[i].Thumbnail)
		for j, img := range b.Colors[i].Gallery {
			b.Colors[i].Gallery[j] = h.Backend.ResolveImageURL(img)
		}
	}
}

// GetBundles is the handler for GET /bundles, optionally scoped by category.
func (h *Handlers) GetBundles(c *gin.Context) {
	bundles, err := h.Backend.ActiveBundles(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.Printf("bundle: fetch active bundles failed: %v", err)
		bundles = []models.Bundle{}
	}
	for i := range bundles {
		h.normalizeBundleImages(&bundles[i])
	}

	c.JSON(http.StatusOK, gin.H{
		"bundles": bundles,
		"total":   len(bundles),
	})
}

// GetBundleDetail is the handler for GET /bundles/:id.
// A 404 on the detail endpoint falls back to searching the active-bundles
// list by id or name before giving up, because recently renamed bundles keep
// working through their old links that way.
func (h *Handlers) GetBundleDetail(c *gin.Context) {
	id := c.Param("id")

	bundle, err := h.Backend.BundleDetail(c.Request.Context(), id)
	if err != nil {
		if !errors.Is(err, backend.ErrNotFound) {
			log.Printf("bundle: fetch %s failed: %v", id, err)
		}
		bundle = h.findBundleInActiveList(c, id)
		if bundle == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bundle not found"})
			return
		}
	}
	h.normalizeBundleImages(bundle)

	// Resolve the selection: explicit query values win, axis defaults fill in.
	sel := pricing.SelectionFor(bundle,
		c.Query("pack"), c.Query("color"), c.Query("size"), c.Query("length"))
	quote := pricing.Quote(bundle, sel)

	packName := ""
	if sel.Pack != nil {
		packName = sel.Pack.Name
	}
	colorName := ""
	if sel.Color != nil {
		colorName = sel.Color.Name
	}
	compositeKey := models.BundleDedupKey(bundle.ID, packName, sel.Size, sel.Length, colorName)

	sessionID := middleware.SessionID(c)

	c.JSON(http.StatusOK, gin.H{
		"bundle":       bundle,
		"selection":    sel,
		"quote":        quote,
		"displayPrice": h.Currency.FormatPrice(quote.TotalPrice),
		"currency":     h.Currency.Code(),
		"compositeKey": compositeKey,
		"inCart":       sessionID != "" && h.Carts.IsBundleInCart(sessionID, bundle.ID, compositeKey),
	})
}

// findBundleInActiveList searches the active list for a bundle whose id or
// name matches. Name matching is case-insensitive.
func (h *Handlers) findBundleInActiveList(c *gin.Context, idOrName string) *models.Bundle {
	bundles, err := h.Backend.ActiveBundles(c.Request.Context(), "")
	if err != nil {
		log.Printf("bundle: fallback list fetch failed: %v", err)
		return nil
	}
	for i := range bundles {
		if bundles[i].ID == idOrName || strings.EqualFold(bundles[i].Name, idOrName) {
			return &bundles[i]
		}
	}
	return nil
}

// CalculateBundleDiscount is the handler for POST /bundles/calculate-discount.
// It sends the session's current cart lines to the backend's discount
// calculator. A failure degrades to zero discount, never an error page.
func (h *Handlers) CalculateBundleDiscount(c *gin.Context) {
	sessionID := middleware.SessionID(c)

	items := []backend.BundleDiscountItem{}
	for _, li := range h.Carts.Items(sessionID) {
		items = append(items, backend.BundleDiscountItem{
			ID:       li.ID,
			Quantity: li.Quantity,
			Price:    li.Price,
		})
	}

	result, err := h.Backend.CalculateBundleDiscount(c.Request.Context(), items)
	if err != nil {
		log.Printf("bundle: discount calculation failed: %v", err)
		result = &backend.BundleDiscountResult{}
	}

	c.JSON(http.StatusOK, gin.H{
		"discount":     result.Discount,
		"dealsApplied": result.DealsApplied,
	})
}
