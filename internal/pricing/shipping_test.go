package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingFor_JustBelowThreshold(t *testing.T) {
	info := ShippingFor(299, 0, 0)

	assert.False(t, info.IsFreeShipping)
	assert.Equal(t, 1.0, info.RemainingForFree)
	assert.Equal(t, float64(DefaultShippingCost), info.ShippingCost)
}

func TestShippingFor_AtThreshold(t *testing.T) {
	info := ShippingFor(300, 0, 0)

	assert.True(t, info.IsFreeShipping)
	assert.Equal(t, 0.0, info.ShippingCost)
	assert.Equal(t, 0.0, info.RemainingForFree)
}

func TestShippingFor_BackendRuleWins(t *testing.T) {
	info := ShippingFor(120, 100, 15)

	assert.True(t, info.IsFreeShipping)
	assert.Equal(t, 100.0, info.FreeShippingThreshold)
	assert.Equal(t, 0.0, info.ShippingCost)
}

func TestShippingFor_ZeroRuleFallsBackToDefaults(t *testing.T) {
	info := ShippingFor(50, 0, 0)

	assert.Equal(t, float64(DefaultFreeShippingThreshold), info.FreeShippingThreshold)
	assert.Equal(t, 250.0, info.RemainingForFree)
}
