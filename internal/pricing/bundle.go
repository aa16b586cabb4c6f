package pricing

import (
	"math"

	"github.com/meravi-clothing/storefront-api/internal/models"
)

// BundleSelection is a chosen combination of the bundle's independent axes.
// Zero values mean "axis not present on this bundle".
type BundleSelection struct {
	Pack   *models.PackOption  `json:"pack,omitempty"`
	Color  *models.BundleColor `json:"color,omitempty"`
	Size   string              `json:"size,omitempty"`
	Length string              `json:"length,omitempty"`
}

// BundleQuote is the derived pricing for a selection.
type BundleQuote struct {
	TotalPrice        float64 `json:"totalPrice"`
	PerItemPrice      float64 `json:"perItemPrice"`
	Savings           float64 `json:"savings"`
	SavingsPercentage int     `json:"savingsPercentage"`
}

// DefaultSelection picks the first entry of each option axis, matching what a
// bundle page shows on load. Recomputed whenever the bundle changes.
func DefaultSelection(bundle *models.Bundle) BundleSelection {
	var sel BundleSelection
	if len(bundle.PackOptions) > 0 {
		sel.Pack = &bundle.PackOptions[0]
	}
	if len(bundle.Colors) > 0 {
		sel.Color = &bundle.Colors[0]
	}
	if len(bundle.Sizes) > 0 {
		sel.Size = bundle.Sizes[0]
	}
	if len(bundle.Lengths) > 0 {
		sel.Length = bundle.Lengths[0]
	}
	return sel
}

// SelectionFor resolves the named options against the bundle's axes, falling
// back to the default for any axis whose value does not match an option.
// Length has no price effect; it only participates in line identity.
func SelectionFor(bundle *models.Bundle, packName, colorName, size, length string) BundleSelection {
	sel := DefaultSelection(bundle)

	for i := range bundle.PackOptions {
		if bundle.PackOptions[i].Name == packName {
			sel.Pack = &bundle.PackOptions[i]
			break
		}
	}
	for i := range bundle.Colors {
		if bundle.Colors[i].Name == colorName {
			sel.Color = &bundle.Colors[i]
			break
		}
	}
	for _, s := range bundle.Sizes {
		if s == size {
			sel.Size = s
			break
		}
	}
	for _, l := range bundle.Lengths {
		if l == length {
			sel.Length = l
			break
		}
	}
	return sel
}

// Quote derives the selection's total price and savings display:
//
//	total   = pack.totalPrice + sizePriceVariation[size]
//	savings = max(basePrice - total, 0)
//	pct     = round(savings / basePrice * 100)   (only when basePrice > 0)
func Quote(bundle *models.Bundle, sel BundleSelection) BundleQuote {
	var quote BundleQuote
	if sel.Pack != nil {
		quote.TotalPrice = sel.Pack.TotalPrice
	}
	if adj, ok := bundle.SizePriceVariation[sel.Size]; ok {
		quote.TotalPrice += adj
	}

	if sel.Pack != nil && sel.Pack.Quantity > 0 {
		quote.PerItemPrice = quote.TotalPrice / float64(sel.Pack.Quantity)
	}

	quote.Savings = math.Max(bundle.BasePrice-quote.TotalPrice, 0)
	if bundle.BasePrice > 0 {
		quote.SavingsPercentage = int(math.Round(quote.Savings / bundle.BasePrice * 100))
	}
	return quote
}
