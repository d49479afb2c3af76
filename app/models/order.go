package models

import "time"

// StatusCompleted is the only order status; no further transitions are
// modeled.
const StatusCompleted = "completed"

// PaymentSummary is what the order keeps of the payment: never the full
// card number or CVV.
type PaymentSummary struct {
	CardLast4   string    `json:"cardLast4"`
	NameOnCard  string    `json:"nameOnCard"`
	PaymentDate time.Time `json:"paymentDate"`
}

// ShippingSummary is the destination captured at checkout.
type ShippingSummary struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
}

// Order is an immutable snapshot of the cart at creation time. The Subtotal
// is computed from the snapshotted prices, not live catalog prices. It is
// persisted under the "total" key; shipping and tax are derived from it on
// demand rather than stored.
type Order struct {
	ID       string          `json:"id"`
	Items    []CartLine      `json:"items"`
	Subtotal float64         `json:"total"`
	Date     time.Time       `json:"date"`
	Status   string          `json:"status"`
	Payment  PaymentSummary  `json:"payment"`
	Shipping ShippingSummary `json:"shipping"`
}

// ItemCount is the sum of line quantities in the snapshot.
func (o Order) ItemCount() int {
	count := 0
	for _, line := range o.Items {
		count += line.Quantity
	}
	return count
}
