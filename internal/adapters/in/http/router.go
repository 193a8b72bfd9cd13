// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"cartledger/internal/adapters/in/http/handlers"
	"cartledger/internal/adapters/in/http/middleware"
	usecase "cartledger/internal/application/usecase"
)

// RouterDeps collects the usecases and auth dependencies injected from
// the DI container.
type RouterDeps struct {
	CartUC     *usecase.CartUsecase
	CartItemUC *usecase.CartItemUsecase

	FirebaseAuth *middleware.FirebaseAuthClient
}

// NewRouter sets up HTTP routing for the cart endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on, no auth)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	auth := &middleware.AuthMiddleware{FirebaseAuth: deps.FirebaseAuth}

	if deps.CartUC != nil && deps.CartItemUC != nil {
		cartHandler := auth.Handler(handlers.NewCartHandler(deps.CartUC, deps.CartItemUC))
		mux.Handle("/carts", cartHandler)
		mux.Handle("/carts/", cartHandler)
	}

	if deps.CartItemUC != nil {
		itemHandler := auth.Handler(handlers.NewCartItemHandler(deps.CartItemUC))
		mux.Handle("/cart-items/", itemHandler)
	}

	return middleware.Recover(mux)
}
