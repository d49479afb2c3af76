package controllers

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/stylestore/app/services"
	"github.com/shashiranjanraj/stylestore/pkg/response"
)

type OrderController struct {
	cart *services.CartService
}

func NewOrderController(cart *services.CartService) *OrderController {
	return &OrderController{cart: cart}
}

// Index lists every placed order.
func (c *OrderController) Index(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, c.cart.Orders())
}

// Show returns one order with its checkout totals recomputed from the
// snapshot. Unknown ids answer 404; stale confirmation links are normal.
func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	order, ok := c.cart.Order(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w)
		return
	}
	response.Success(w, services.BuildInvoice(order))
}

// Invoice renders the order as a downloadable PDF invoice.
func (c *OrderController) Invoice(w http.ResponseWriter, r *http.Request) {
	order, ok := c.cart.Order(chi.URLParam(r, "id"))
	if !ok {
		response.NotFound(w)
		return
	}

	pdf, err := services.BuildInvoice(order).RenderPDF()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not render the invoice")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", order.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
