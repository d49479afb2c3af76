// Library-mode walkthrough: drive the cart and order lifecycle directly,
// without the HTTP server. Run with `go run ./example`.
package main

import (
	"fmt"
	"log"

	"github.com/shashiranjanraj/stylestore/app/catalog"
	"github.com/shashiranjanraj/stylestore/app/models"
	"github.com/shashiranjanraj/stylestore/app/services"
	"github.com/shashiranjanraj/stylestore/pkg/kvstore"
)

func main() {
	store := kvstore.NewMemory()
	products := catalog.Default()
	cart := services.NewCartService(store)

	tshirt, _ := products.ByID(2)
	watch, _ := products.ByID(3)

	cart.AddItem(tshirt, 2)
	cart.AddItem(watch, 1)
	cart.AddItem(tshirt, 1) // merges into the existing line

	for _, line := range cart.Lines() {
		fmt.Printf("%d × %s @ %.2f\n", line.Quantity, line.Name, line.Price)
	}

	totals := services.CheckoutTotals(cart.Subtotal()).Rounded()
	fmt.Printf("subtotal %.2f  shipping %.2f  tax %.2f  total %.2f\n",
		totals.Subtotal, totals.Shipping, totals.Tax, totals.Total)

	orderID, err := cart.CreateOrder(
		models.PaymentSummary{CardLast4: "4242", NameOnCard: "Jane Doe"},
		models.ShippingSummary{Address: "1 Main St", City: "Springfield", ZipCode: "12345"},
	)
	if err != nil {
		log.Fatal(err)
	}

	order, _ := cart.Order(orderID)
	fmt.Printf("order %s placed with %d items; cart now holds %d items\n",
		order.ID, order.ItemCount(), cart.ItemCount())
}
