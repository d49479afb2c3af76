package services

import "math"

// Derived-total rules, shared by the cart, checkout and invoice views.
// They live here and nowhere else so the three surfaces can never drift.
const (
	// FlatShipping is charged whenever the cart is non-empty.
	FlatShipping = 10.00

	// TaxRate applies at checkout and on invoices only; the cart page
	// total omits tax until the shopper commits to checkout.
	TaxRate = 0.05
)

// Totals is the monetary breakdown for a cart or an order. Values are kept
// at full float precision during computation; call Rounded before display
// so rounding error never compounds across repeated reads.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// CartTotals derives the cart-page breakdown: shipping but no tax.
func CartTotals(subtotal float64) Totals {
	shipping := 0.0
	if subtotal > 0 {
		shipping = FlatShipping
	}
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}
}

// CheckoutTotals derives the checkout/invoice breakdown: shipping plus tax.
func CheckoutTotals(subtotal float64) Totals {
	shipping := 0.0
	if subtotal > 0 {
		shipping = FlatShipping
	}
	tax := subtotal * TaxRate
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Round rounds to cents. Display-time only.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a copy with every amount rounded to cents.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal: Round(t.Subtotal),
		Shipping: Round(t.Shipping),
		Tax:      Round(t.Tax),
		Total:    Round(t.Total),
	}
}
