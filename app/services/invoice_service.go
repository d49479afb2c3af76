package services

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/shashiranjanraj/stylestore/app/models"
)

// Invoice is the view model for the invoice page: the immutable order
// snapshot plus the checkout breakdown recomputed from its subtotal.
type Invoice struct {
	Order  models.Order `json:"order"`
	Totals Totals       `json:"totals"`
}

// BuildInvoice derives the invoice for an order. Totals come from the
// snapshot subtotal, never live catalog prices, and are rounded for
// display.
func BuildInvoice(order models.Order) Invoice {
	return Invoice{
		Order:  order,
		Totals: CheckoutTotals(order.Subtotal).Rounded(),
	}
}

// RenderPDF renders the printable invoice.
func (inv Invoice) RenderPDF() ([]byte, error) {
	order := inv.Order

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, "StyleStore Invoice")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Order: %s", order.ID))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s", order.Date.Format("January 2, 2006")))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Status: %s", order.Status))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 7, "Ship To")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, order.Shipping.Address)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("%s, %s", order.Shipping.City, order.Shipping.ZipCode))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 7, "Payment")
	pdf.Ln(7)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("%s - card ending %s", order.Payment.NameOnCard, order.Payment.CardLast4))
	pdf.Ln(10)

	// Line items.
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, line := range order.Items {
		pdf.CellFormat(95, 8, line.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", line.Quantity), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("$%.2f", line.Price), "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("$%.2f", Round(line.LineTotal())), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	totals := inv.Totals
	writeTotal := func(label string, amount float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Arial", style, 11)
		pdf.CellFormat(150, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("$%.2f", amount), "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal:", totals.Subtotal, false)
	writeTotal("Tax (5%):", totals.Tax, false)
	writeTotal("Shipping:", totals.Shipping, false)
	writeTotal("Total:", totals.Total, true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
