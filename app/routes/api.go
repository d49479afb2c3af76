package routes

import (
	"time"

	"github.com/shashiranjanraj/stylestore/app/catalog"
	"github.com/shashiranjanraj/stylestore/app/controllers"
	"github.com/shashiranjanraj/stylestore/app/services"
	"github.com/shashiranjanraj/stylestore/pkg/metrics"
	"github.com/shashiranjanraj/stylestore/pkg/middleware"
	"github.com/shashiranjanraj/stylestore/pkg/reqid"
	"github.com/shashiranjanraj/stylestore/pkg/router"
)

// Deps carries the long-lived services the HTTP layer works against.
// They are built once at startup and shared by reference; no handler
// constructs its own store.
type Deps struct {
	Catalog  *catalog.Catalog
	Cart     *services.CartService
	Session  *services.SessionService
	Payments *services.PaymentProcessor
}

// RegisterAPI mounts the storefront API onto r.
func RegisterAPI(r *router.Router, deps Deps) error {
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(120, time.Minute),
	)

	catalogController := controllers.NewCatalogController(deps.Catalog)
	cartController := controllers.NewCartController(deps.Cart, deps.Catalog)
	checkoutController := controllers.NewCheckoutController(deps.Cart, deps.Payments)
	authController := controllers.NewAuthController(deps.Session)
	orderController := controllers.NewOrderController(deps.Cart)

	graphqlController, err := controllers.NewGraphQLController(deps.Catalog)
	if err != nil {
		return err
	}

	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")

	api.Get("/products", "products.index", catalogController.Index)
	api.Get("/products/{id}", "products.show", catalogController.Show)
	api.Get("/categories", "categories.index", catalogController.Categories)

	api.Get("/cart", "cart.show", cartController.Show)
	api.Post("/cart/items", "cart.add", cartController.Add)
	api.Put("/cart/items/{id}", "cart.update", cartController.Update)
	api.Delete("/cart/items/{id}", "cart.remove", cartController.Remove)
	api.Delete("/cart", "cart.clear", cartController.Clear)

	api.Post("/checkout", "checkout.create", checkoutController.Create)

	api.Get("/orders", "orders.index", orderController.Index)
	api.Get("/orders/{id}", "orders.show", orderController.Show)
	api.Get("/orders/{id}/invoice", "orders.invoice", orderController.Invoice)

	api.Post("/auth/register", "auth.register", authController.Register)
	api.Post("/auth/login", "auth.login", authController.Login)
	api.Post("/auth/logout", "auth.logout", authController.Logout)

	protected := api.Group("", middleware.AuthMiddleware)
	protected.Get("/profile", "auth.profile", authController.Profile)

	api.Post("/graphql", "graphql", graphqlController.Query)

	return nil
}
