package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/gothyxan/storefront/internal/http/handlers"
	"github.com/gothyxan/storefront/internal/http/ratelimit"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)

	// Admin writes go through the rate limiter.
	r.Group(func(r chi.Router) {
		r.Use(ratelimit.Middleware)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
	})

	r.Get("/admin/actions", handlers.GetActionsHandler)

	r.Get("/cart", handlers.GetCartHandler)
	r.Delete("/cart", handlers.ClearCartHandler)
	r.Get("/cart/count", handlers.CartCountHandler)
	r.Post("/cart/items", handlers.AddCartItemHandler)
	r.Delete("/cart/items/{id}", handlers.RemoveCartItemHandler)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}
