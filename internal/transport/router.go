package transport

import (
	"net/http"

	"pasarku-be/internal/auth"
	"pasarku-be/internal/metrics"
	"pasarku-be/internal/middleware"
	"pasarku-be/internal/user"
)

type healthResponse struct {
	Status string `json:"status"`
	metrics.Snapshot
}

// NewRouter wires every route to its handler and role guard, then wraps the
// mux in the shared middleware chain. Method+path patterns route by
// specificity, so "DELETE /cart/clear" wins over "DELETE /cart/{productID}".
func NewRouter(
	users *UserHandler,
	products *ProductHandler,
	categories *CategoryHandler,
	carts *CartHandler,
	guard *auth.Guard,
	reg *metrics.Registry,
) http.Handler {
	seller := middleware.RequireRole(guard, user.RoleSeller)
	buyer := middleware.RequireRole(guard, user.RoleBuyer)

	mux := http.NewServeMux()

	mux.HandleFunc("POST /users", users.Create)
	mux.HandleFunc("POST /users/login", users.Login)
	mux.HandleFunc("GET /users", users.List)
	mux.HandleFunc("GET /users/{id}", users.GetByID)
	mux.HandleFunc("DELETE /users/{id}", users.Delete)

	mux.HandleFunc("GET /products", products.List)
	mux.HandleFunc("GET /search", products.Search)
	mux.HandleFunc("GET /categories", categories.List)
	mux.Handle("POST /products", seller(http.HandlerFunc(products.Create)))
	mux.Handle("PUT /products/{id}", seller(http.HandlerFunc(products.Update)))
	mux.Handle("DELETE /products/{id}", seller(http.HandlerFunc(products.Delete)))

	mux.Handle("GET /cart", buyer(http.HandlerFunc(carts.Get)))
	mux.Handle("POST /cart/add", buyer(http.HandlerFunc(carts.Add)))
	mux.Handle("DELETE /cart/clear", buyer(http.HandlerFunc(carts.Clear)))
	mux.Handle("DELETE /cart/{productID}", buyer(http.HandlerFunc(carts.Remove)))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{
			Status:   "ok",
			Snapshot: reg.Snapshot(),
		})
	})

	var handler http.Handler = mux
	handler = middleware.RateLimit(guard)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Logging(reg)(handler)
	handler = middleware.RequestID(handler)

	return handler
}
