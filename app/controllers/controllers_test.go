package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stylestore/app/catalog"
	"github.com/shashiranjanraj/stylestore/app/models"
	"github.com/shashiranjanraj/stylestore/app/routes"
	"github.com/shashiranjanraj/stylestore/app/services"
	"github.com/shashiranjanraj/stylestore/pkg/kvstore"
	"github.com/shashiranjanraj/stylestore/pkg/router"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := kvstore.NewMemory()
	deps := routes.Deps{
		Catalog:  catalog.Default(),
		Cart:     services.NewCartService(store),
		Session:  services.NewSessionService(store),
		Payments: services.NewPaymentProcessor(0),
	}

	r := router.New()
	require.NoError(t, routes.RegisterAPI(r, deps))

	srv := httptest.NewServer(r.Handler())
	t.Cleanup(srv.Close)
	return srv
}

type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func do(t *testing.T, method, url string, body interface{}) (*http.Response, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var env envelope
	if resp.Header.Get("Content-Type") == "application/json" {
		json.NewDecoder(resp.Body).Decode(&env)
	}
	return resp, env
}

func TestProductsIndex(t *testing.T) {
	srv := newServer(t)

	resp, env := do(t, http.MethodGet, srv.URL+"/api/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	assert.Len(t, products, 6)
}

func TestProductsIndexByCategory(t *testing.T) {
	srv := newServer(t)

	resp, env := do(t, http.MethodGet, srv.URL+"/api/products?category=Electronics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, "Electronics", p.Category)
	}
}

func TestProductShowUnknownIs404(t *testing.T) {
	srv := newServer(t)

	resp, _ := do(t, http.MethodGet, srv.URL+"/api/products/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartAddMergesDuplicates(t *testing.T) {
	srv := newServer(t)

	do(t, http.MethodPost, srv.URL+"/api/cart/items", map[string]int{"product_id": 2, "quantity": 2})
	resp, env := do(t, http.MethodPost, srv.URL+"/api/cart/items", map[string]int{"product_id": 2, "quantity": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart struct {
		Items     []models.CartLine `json:"items"`
		ItemCount int               `json:"itemCount"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount)
}

func TestCartAddUnknownProductIs404(t *testing.T) {
	srv := newServer(t)

	resp, _ := do(t, http.MethodPost, srv.URL+"/api/cart/items", map[string]int{"product_id": 99})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartUpdateToZeroRemoves(t *testing.T) {
	srv := newServer(t)

	do(t, http.MethodPost, srv.URL+"/api/cart/items", map[string]int{"product_id": 2, "quantity": 2})
	resp, env := do(t, http.MethodPut, srv.URL+"/api/cart/items/2", map[string]int{"quantity": 0})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart struct {
		Items []models.CartLine `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Empty(t, cart.Items)
}

func validCheckoutBody() map[string]string {
	return map[string]string{
		"name_on_card": "Jane Doe",
		"card_number":  "4242 4242 4242 4242",
		"expiry":       "09/27",
		"cvv":          "123",
		"address":      "1 Main St",
		"city":         "Springfield",
		"zip_code":     "12345",
	}
}

func TestCheckoutRejectsBadCardBeforeAnyMutation(t *testing.T) {
	srv := newServer(t)

	do(t, http.MethodPost, srv.URL+"/api/cart/items", map[string]int{"product_id": 2, "quantity": 1})

	body := validCheckoutBody()
	body["card_number"] = "1234"
	resp, env := do(t, http.MethodPost, srv.URL+"/api/checkout", body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, env.Errors, "card_number")

	// The cart is untouched and no order exists.
	_, cartEnv := do(t, http.MethodGet, srv.URL+"/api/cart", nil)
	var cart struct {
		ItemCount int `json:"itemCount"`
	}
	require.NoError(t, json.Unmarshal(cartEnv.Data, &cart))
	assert.Equal(t, 1, cart.ItemCount)

	_, ordersEnv := do(t, http.MethodGet, srv.URL+"/api/orders", nil)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(ordersEnv.Data, &orders))
	assert.Empty(t, orders)
}

func TestCheckoutEmptyCartIsRejected(t *testing.T) {
	srv := newServer(t)

	resp, _ := do(t, http.MethodPost, srv.URL+"/api/checkout", validCheckoutBody())
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCheckoutCreatesOrderAndEmptiesCart(t *testing.T) {
	srv := newServer(t)

	do(t, http.MethodPost, srv.URL+"/api/cart/items", map[string]int{"product_id": 2, "quantity": 2})
	do(t, http.MethodPost, srv.URL+"/api/cart/items", map[string]int{"product_id": 3, "quantity": 1})

	resp, env := do(t, http.MethodPost, srv.URL+"/api/checkout", validCheckoutBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out struct {
		OrderID string `json:"orderId"`
		Totals  struct {
			Subtotal float64 `json:"subtotal"`
			Shipping float64 `json:"shipping"`
			Tax      float64 `json:"tax"`
			Total    float64 `json:"total"`
		} `json:"totals"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(t, out.OrderID)
	assert.InDelta(t, 219.97, out.Totals.Subtotal, 1e-9)
	assert.InDelta(t, 11.00, out.Totals.Tax, 1e-9)
	assert.InDelta(t, 240.97, out.Totals.Total, 1e-9)

	_, cartEnv := do(t, http.MethodGet, srv.URL+"/api/cart", nil)
	var cart struct {
		ItemCount int `json:"itemCount"`
	}
	require.NoError(t, json.Unmarshal(cartEnv.Data, &cart))
	assert.Zero(t, cart.ItemCount)

	orderResp, _ := do(t, http.MethodGet, srv.URL+"/api/orders/"+out.OrderID, nil)
	assert.Equal(t, http.StatusOK, orderResp.StatusCode)
}

func TestOrderUnknownIs404(t *testing.T) {
	srv := newServer(t)

	resp, _ := do(t, http.MethodGet, srv.URL+"/api/orders/no-such-order", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestOrderInvoiceIsPDF(t *testing.T) {
	srv := newServer(t)

	do(t, http.MethodPost, srv.URL+"/api/cart/items", map[string]int{"product_id": 2, "quantity": 1})
	_, env := do(t, http.MethodPost, srv.URL+"/api/checkout", validCheckoutBody())

	var out struct {
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))

	resp, _ := do(t, http.MethodGet, srv.URL+"/api/orders/"+out.OrderID+"/invoice", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func registerBody() map[string]string {
	return map[string]string{
		"email":                 "jane@example.com",
		"password":              "s3cret1",
		"password_confirmation": "s3cret1",
		"first_name":            "Jane",
		"last_name":             "Doe",
	}
}

func TestRegisterIssuesToken(t *testing.T) {
	srv := newServer(t)

	resp, env := do(t, http.MethodPost, srv.URL+"/api/auth/register", registerBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var session struct {
		User  models.UserProfile `json:"user"`
		Token string             `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "jane@example.com", session.User.Email)
	assert.Empty(t, session.User.Password, "responses never carry password material")
}

func TestProfileRequiresToken(t *testing.T) {
	srv := newServer(t)

	resp, _ := do(t, http.MethodGet, srv.URL+"/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProfileWithToken(t *testing.T) {
	srv := newServer(t)

	_, env := do(t, http.MethodPost, srv.URL+"/api/auth/register", registerBody())
	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+session.Token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginWrongPasswordIs401(t *testing.T) {
	srv := newServer(t)

	do(t, http.MethodPost, srv.URL+"/api/auth/register", registerBody())
	resp, _ := do(t, http.MethodPost, srv.URL+"/api/auth/login", map[string]string{
		"email": "jane@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutThenLoginStillWorks(t *testing.T) {
	srv := newServer(t)

	do(t, http.MethodPost, srv.URL+"/api/auth/register", registerBody())
	do(t, http.MethodPost, srv.URL+"/api/auth/logout", nil)

	resp, _ := do(t, http.MethodPost, srv.URL+"/api/auth/login", map[string]string{
		"email": "jane@example.com", "password": "s3cret1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode, "logging out must not destroy the stored profile")
}

func TestGraphQLCategories(t *testing.T) {
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/graphql",
		bytes.NewBufferString(`{"query":"{ categories }"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Data struct {
			Categories []string `json:"categories"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.Data.Categories, "Electronics")
}

func TestGraphQLProductByID(t *testing.T) {
	srv := newServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/graphql",
		bytes.NewBufferString(`{"query":"{ product(id: 3) { name price inStock } }"}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Data struct {
			Product struct {
				Name    string  `json:"name"`
				Price   float64 `json:"price"`
				InStock bool    `json:"inStock"`
			} `json:"product"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Minimalist Ceramic Watch", out.Data.Product.Name)
	assert.InDelta(t, 159.99, out.Data.Product.Price, 1e-9)
	assert.True(t, out.Data.Product.InStock)
}
