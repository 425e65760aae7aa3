package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter mounts the API routes. Global middleware (logging, recovery,
// timeouts) is attached by the caller.
func NewRouter(authH *AuthHandler, productH *ProductHandler, ordersH *OrdersHandler, authorizer Authorizer) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authH.Login)

		r.Group(func(r chi.Router) {
			r.Use(BearerAuth(authorizer))

			r.Get("/products", productH.ListProducts)
			r.Get("/orders", ordersH.ListOrders)
			r.Post("/orders", ordersH.CreateOrder)
			r.Patch("/admin/orders/{order_id}/status", ordersH.UpdateStatus)
		})
	})

	return r
}
