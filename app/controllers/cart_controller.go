package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/stylestore/app/catalog"
	"github.com/shashiranjanraj/stylestore/app/models"
	"github.com/shashiranjanraj/stylestore/app/requests"
	"github.com/shashiranjanraj/stylestore/app/services"
	"github.com/shashiranjanraj/stylestore/pkg/bind"
	"github.com/shashiranjanraj/stylestore/pkg/response"
	"github.com/shashiranjanraj/stylestore/pkg/validate"
)

type CartController struct {
	cart    *services.CartService
	catalog *catalog.Catalog
}

func NewCartController(cart *services.CartService, c *catalog.Catalog) *CartController {
	return &CartController{cart: cart, catalog: c}
}

type cartView struct {
	Items     []models.CartLine `json:"items"`
	ItemCount int               `json:"itemCount"`
	Totals    services.Totals   `json:"totals"`
}

func (c *CartController) view() cartView {
	return cartView{
		Items:     c.cart.Lines(),
		ItemCount: c.cart.ItemCount(),
		Totals:    services.CartTotals(c.cart.Subtotal()).Rounded(),
	}
}

// Show returns the current cart with its totals. The cart view shows
// subtotal and shipping only; tax appears first at checkout.
func (c *CartController) Show(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, c.view())
}

// Add puts a product in the cart, merging into an existing line when the
// product is already there. Quantity defaults to one.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	var in requests.CartItemInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	product, ok := c.catalog.ByID(in.ProductID)
	if !ok {
		response.NotFound(w)
		return
	}

	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}
	c.cart.AddItem(product, qty)
	response.Success(w, c.view())
}

// Update sets the quantity of a line. Zero or less removes the line;
// updating a product that is not in the cart changes nothing.
func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w)
		return
	}

	var in requests.QuantityInput
	errs, bindErr := bind.JSON(r, &in)
	if bindErr != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	c.cart.UpdateQuantity(id, in.Quantity)
	response.Success(w, c.view())
}

// Remove drops a line from the cart.
func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.NotFound(w)
		return
	}

	c.cart.RemoveItem(id)
	response.Success(w, c.view())
}

// Clear empties the cart.
func (c *CartController) Clear(w http.ResponseWriter, _ *http.Request) {
	c.cart.Clear()
	response.Success(w, c.view())
}
