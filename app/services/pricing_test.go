package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/stylestore/app/services"
)

func TestCartTotalsOmitTax(t *testing.T) {
	totals := services.CartTotals(219.97)

	assert.InDelta(t, 219.97, totals.Subtotal, 1e-9)
	assert.InDelta(t, 10.00, totals.Shipping, 1e-9)
	assert.Zero(t, totals.Tax, "the cart view never charges tax")
	assert.InDelta(t, 229.97, totals.Total, 1e-9)
}

func TestCheckoutTotalsIncludeTax(t *testing.T) {
	totals := services.CheckoutTotals(219.97).Rounded()

	assert.InDelta(t, 10.00, totals.Shipping, 1e-9)
	assert.InDelta(t, 11.00, totals.Tax, 1e-9) // 5% of 219.97, rounded
	assert.InDelta(t, 240.97, totals.Total, 1e-9)
}

func TestEmptyCartChargesNothing(t *testing.T) {
	for _, totals := range []services.Totals{services.CartTotals(0), services.CheckoutTotals(0)} {
		assert.Zero(t, totals.Subtotal)
		assert.Zero(t, totals.Shipping, "shipping applies only to non-empty carts")
		assert.Zero(t, totals.Tax)
		assert.Zero(t, totals.Total)
	}
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 11.00, services.Round(10.9985))
	assert.Equal(t, 29.99, services.Round(29.99))
	assert.Equal(t, 0.0, services.Round(0))
}
