// Package requests defines the JSON request bodies accepted by the HTTP
// layer, with their validation rules. Validation runs before any store
// mutation; failures come back as a per-field error map, not a thrown error.
package requests

import "github.com/shashiranjanraj/stylestore/app/models"

// RegisterInput is the body of POST /api/auth/register.
type RegisterInput struct {
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=6,confirmed"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
	FirstName            string `json:"first_name" validate:"required"`
	LastName             string `json:"last_name" validate:"required"`
	Phone                string `json:"phone" validate:"nullable,min=7"`
	Address              string `json:"address" validate:"nullable"`
	City                 string `json:"city" validate:"nullable"`
	ZipCode              string `json:"zip_code" validate:"nullable,between=4,10"`
}

// Profile converts the input into the profile the session layer stores.
// The password is still plaintext at this point; hashing happens in the
// session service.
func (in RegisterInput) Profile() models.UserProfile {
	return models.UserProfile{
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		ZipCode:   in.ZipCode,
	}
}

// LoginInput is the body of POST /api/auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CartItemInput is the body of POST /api/cart/items.
type CartItemInput struct {
	ProductID int `json:"product_id" validate:"required,numeric,min=1"`
	Quantity  int `json:"quantity" validate:"nullable,numeric,min=1"`
}

// QuantityInput is the body of PUT /api/cart/items/{id}. Zero is a valid
// quantity here, it removes the line, so the field is nullable.
type QuantityInput struct {
	Quantity int `json:"quantity" validate:"nullable,numeric,min=0"`
}

// CheckoutInput is the body of POST /api/checkout. Card details are
// validated and immediately reduced to a last-four summary; the full
// number is never stored.
type CheckoutInput struct {
	NameOnCard string `json:"name_on_card" validate:"required"`
	CardNumber string `json:"card_number" validate:"required,card_number"`
	Expiry     string `json:"expiry" validate:"required,card_expiry"`
	CVV        string `json:"cvv" validate:"required,cvv"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	ZipCode    string `json:"zip_code" validate:"required,between=4,10"`
}

// Shipping extracts the shipping summary captured on the order.
func (in CheckoutInput) Shipping() models.ShippingSummary {
	return models.ShippingSummary{
		Address: in.Address,
		City:    in.City,
		ZipCode: in.ZipCode,
	}
}
