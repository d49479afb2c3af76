package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/stylestore/app/requests"
	"github.com/shashiranjanraj/stylestore/app/services"
	"github.com/shashiranjanraj/stylestore/pkg/bind"
	"github.com/shashiranjanraj/stylestore/pkg/logger"
	"github.com/shashiranjanraj/stylestore/pkg/response"
	"github.com/shashiranjanraj/stylestore/pkg/validate"
)

type CheckoutController struct {
	cart     *services.CartService
	payments *services.PaymentProcessor
}

func NewCheckoutController(cart *services.CartService, payments *services.PaymentProcessor) *CheckoutController {
	return &CheckoutController{cart: cart, payments: payments}
}

type checkoutView struct {
	OrderID string          `json:"orderId"`
	Totals  services.Totals `json:"totals"`
}

// Create runs the checkout: validate the form, simulate the payment, then
// snapshot the cart into an order. Validation failures happen before any
// payment or mutation; a cancelled request aborts before the order exists.
func (c *CheckoutController) Create(w http.ResponseWriter, r *http.Request) {
	var in requests.CheckoutInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	if c.cart.ItemCount() == 0 {
		response.Error(w, http.StatusUnprocessableEntity, "Cannot check out an empty cart")
		return
	}

	subtotal := c.cart.Subtotal()

	payment, err := c.payments.Process(r.Context(), in.NameOnCard, in.CardNumber)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Caller went away mid-payment; nothing was charged or stored.
			response.Error(w, http.StatusRequestTimeout, "Payment interrupted")
			return
		}
		response.Error(w, http.StatusBadGateway, "Payment failed")
		return
	}

	orderID, err := c.cart.CreateOrder(payment, in.Shipping())
	if err != nil {
		logger.WithCtx(r.Context()).Error("order creation failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Could not record the order")
		return
	}

	response.Created(w, checkoutView{
		OrderID: orderID,
		Totals:  services.CheckoutTotals(subtotal).Rounded(),
	})
}
