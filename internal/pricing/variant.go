package pricing

import (
	"github.com/meravi-clothing/storefront-api/internal/models"
)

// ResolvedVariant is the outcome of matching a size/color selection against a
// product's variant list, with the derived prices the detail page displays.
type ResolvedVariant struct {
	Variant    *models.ProductVariant `json:"variant,omitempty"`
	SKU        string                 `json:"sku,omitempty"`
	BasePrice  float64                `json:"basePrice"`
	FinalPrice float64                `json:"finalPrice"`
	Images     []string               `json:"images"`
	// CanAddToCart is false when the selection matches no variant.
	CanAddToCart bool `json:"canAddToCart"`
}

// ResolveVariant matches the selected size and color against the product's
// variants and derives the unit price. A product with no variant list is
// treated as always purchasable at the product-level price.
func ResolveVariant(product *models.Product, size, color string) ResolvedVariant {
	resolved := ResolvedVariant{
		Images: imagesForColor(product, color),
	}

	var match *models.ProductVariant
	for i := range product.Variants {
		v := &product.Variants[i]
		if v.Size == size && v.Color == color {
			match = v
			break
		}
	}

	if len(product.Variants) > 0 && match == nil {
		// No variant selected: add-to-cart is disabled, price falls back to
		// the product-level base so the page can still show something.
		resolved.BasePrice = productBasePrice(product)
		resolved.FinalPrice = applyDiscount(resolved.BasePrice, product.DiscountPercentage)
		return resolved
	}

	base := productBasePrice(product)
	if match != nil {
		resolved.Variant = match
		resolved.SKU = match.SKU
		if match.PriceOverride != nil && *match.PriceOverride > 0 {
			base = *match.PriceOverride
		}
	}

	resolved.BasePrice = base
	resolved.FinalPrice = applyDiscount(base, product.DiscountPercentage)
	resolved.CanAddToCart = true
	return resolved
}

// productBasePrice picks the first populated price field, in the backend's
// order of authority: originalPrice, basePrice, price.
func productBasePrice(product *models.Product) float64 {
	if product.OriginalPrice != nil && *product.OriginalPrice > 0 {
		return *product.OriginalPrice
	}
	if product.BasePrice != nil && *product.BasePrice > 0 {
		return *product.BasePrice
	}
	return product.Price
}

// applyDiscount derives the final price: base - base*discount/100.
func applyDiscount(base, discountPercentage float64) float64 {
	return base - base*discountPercentage/100
}

// imagesForColor picks the image set for a color: the color's own gallery if
// present, then the product's color->images mapping, then the full image list.
func imagesForColor(product *models.Product, color string) []string {
	for i := range product.Colors {
		if product.Colors[i].Name == color && len(product.Colors[i].Gallery) > 0 {
			return product.Colors[i].Gallery
		}
	}
	if images, ok := product.ColorImages[color]; ok && len(images) > 0 {
		return images
	}
	return product.Images
}
