package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meravi-clothing/storefront-api/internal/models"
)

func testBundle() *models.Bundle {
	return &models.Bundle{
		ID:        "b1",
		Name:      "Essentials 3-Pack",
		BasePrice: 200,
		PackOptions: []models.PackOption{
			{Name: "3-Pack", Quantity: 3, TotalPrice: 150, PerItemPrice: 50},
			{Name: "5-Pack", Quantity: 5, TotalPrice: 220, PerItemPrice: 44},
		},
		Colors: []models.BundleColor{
			{Name: "Black"},
			{Name: "White", Badge: "Popular"},
		},
		Sizes:   []string{"M", "L", "XL"},
		Lengths: []string{"Regular", "Tall"},
		SizePriceVariation: map[string]float64{
			"XL": 10,
		},
	}
}

func TestDefaultSelection_FirstOfEachAxis(t *testing.T) {
	sel := DefaultSelection(testBundle())

	assert.Equal(t, "3-Pack", sel.Pack.Name)
	assert.Equal(t, "Black", sel.Color.Name)
	assert.Equal(t, "M", sel.Size)
	assert.Equal(t, "Regular", sel.Length)
}

func TestQuote_PackPlusSizeVariation(t *testing.T) {
	bundle := testBundle()
	sel := SelectionFor(bundle, "3-Pack", "Black", "XL", "Regular")

	quote := Quote(bundle, sel)

	assert.Equal(t, 160.0, quote.TotalPrice)
	assert.Equal(t, 40.0, quote.Savings)
	assert.Equal(t, 20, quote.SavingsPercentage)
}

func TestQuote_SizeWithoutVariationAddsNothing(t *testing.T) {
	bundle := testBundle()
	sel := SelectionFor(bundle, "3-Pack", "Black", "M", "Regular")

	quote := Quote(bundle, sel)

	assert.Equal(t, 150.0, quote.TotalPrice)
	assert.Equal(t, 50.0, quote.Savings)
	assert.Equal(t, 25, quote.SavingsPercentage)
}

func TestQuote_LengthHasNoPriceEffect(t *testing.T) {
	bundle := testBundle()

	regular := Quote(bundle, SelectionFor(bundle, "5-Pack", "White", "L", "Regular"))
	tall := Quote(bundle, SelectionFor(bundle, "5-Pack", "White", "L", "Tall"))

	assert.Equal(t, regular.TotalPrice, tall.TotalPrice)
}

func TestQuote_SavingsNeverNegative(t *testing.T) {
	bundle := testBundle()
	bundle.BasePrice = 100 // below the pack price

	quote := Quote(bundle, SelectionFor(bundle, "5-Pack", "Black", "M", "Regular"))

	assert.Equal(t, 0.0, quote.Savings)
	assert.Equal(t, 0, quote.SavingsPercentage)
}

func TestQuote_ZeroBasePriceSkipsPercentage(t *testing.T) {
	bundle := testBundle()
	bundle.BasePrice = 0

	quote := Quote(bundle, DefaultSelection(bundle))

	assert.Equal(t, 0, quote.SavingsPercentage)
}

func TestQuote_PerItemPrice(t *testing.T) {
	bundle := testBundle()

	quote := Quote(bundle, SelectionFor(bundle, "3-Pack", "Black", "XL", "Regular"))

	// 160 total over 3 pieces.
	assert.InDelta(t, 53.33, quote.PerItemPrice, 0.01)
}

func TestSelectionFor_UnknownValuesFallBackToDefaults(t *testing.T) {
	bundle := testBundle()

	sel := SelectionFor(bundle, "9-Pack", "Neon", "XXXL", "Short")

	assert.Equal(t, "3-Pack", sel.Pack.Name)
	assert.Equal(t, "Black", sel.Color.Name)
	assert.Equal(t, "M", sel.Size)
	assert.Equal(t, "Regular", sel.Length)
}
