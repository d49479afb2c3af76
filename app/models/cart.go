package models

// CartLine is one product-plus-quantity entry in the cart. The product
// fields are a denormalized copy taken at the moment the product was added,
// so later catalog changes never rewrite a cart (or an order snapshot built
// from it).
//
// Invariants: Quantity >= 1, and at most one CartLine per product ID in a
// given cart — both enforced by the cart service, never here.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is the displayed per-line amount: unit price × quantity.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}
