package pricing

import "github.com/meravi-clothing/storefront-api/internal/models"

// Shipping fallbacks, used whenever the backend rule is unavailable. These
// constants live only here; handlers and stores must not redeclare them.
const (
	DefaultFreeShippingThreshold = 300
	DefaultShippingCost          = 20
)

// ShippingFor evaluates the free-shipping rule for a subtotal. threshold and
// cost come from the backend rule when available; pass 0 for either to use
// the fallback.
func ShippingFor(subtotal, threshold, cost float64) models.ShippingInfo {
	if threshold <= 0 {
		threshold = DefaultFreeShippingThreshold
	}
	if cost <= 0 {
		cost = DefaultShippingCost
	}

	info := models.ShippingInfo{
		FreeShippingThreshold: threshold,
		ShippingCost:          cost,
	}
	if subtotal >= threshold {
		info.IsFreeShipping = true
		info.ShippingCost = 0
	} else {
		info.RemainingForFree = threshold - subtotal
	}
	return info
}
