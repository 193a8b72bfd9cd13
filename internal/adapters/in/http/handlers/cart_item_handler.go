// internal/adapters/in/http/handlers/cart_item_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"cartledger/internal/adapters/in/http/middleware"
	usecase "cartledger/internal/application/usecase"
	itemdom "cartledger/internal/domain/cartitem"
)

// CartItemHandler serves the standalone item endpoint:
//
//   - PUT /cart-items/{id}   update an item (owner only, via its cart)
//
// There is no standalone item delete: items leave the store only as a
// cascade side effect of deleting their cart.
type CartItemHandler struct {
	uc *usecase.CartItemUsecase
}

func NewCartItemHandler(uc *usecase.CartItemUsecase) http.Handler {
	return &CartItemHandler{uc: uc}
}

func (h *CartItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil {
		writeErr(w, http.StatusInternalServerError, "cart item handler is not configured")
		return
	}

	caller, ok := middleware.Caller(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/cart-items"), "/")
	if rest == "" || strings.Contains(rest, "/") {
		writeErr(w, http.StatusNotFound, "not found")
		return
	}
	if r.Method != http.MethodPut {
		methodNotAllowed(w)
		return
	}

	var p itemdom.Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	it, err := h.uc.Update(r.Context(), p, rest, caller)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}
