// internal/adapters/in/http/handlers/cart_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"cartledger/internal/adapters/in/http/middleware"
	usecase "cartledger/internal/application/usecase"
	itemdom "cartledger/internal/domain/cartitem"
	"cartledger/internal/domain/common"
)

// CartHandler serves the cart endpoints:
//
//   - GET    /carts              list all carts
//   - POST   /carts              create a cart owned by the caller
//   - GET    /carts/{id}         get one cart
//   - DELETE /carts/{id}         delete a cart (owner only, cascades)
//   - GET    /carts/{id}/items   list the cart's items
//   - POST   /carts/{id}/items   add an item (owner only)
type CartHandler struct {
	uc     *usecase.CartUsecase
	itemUC *usecase.CartItemUsecase
}

func NewCartHandler(uc *usecase.CartUsecase, itemUC *usecase.CartItemUsecase) http.Handler {
	return &CartHandler{uc: uc, itemUC: itemUC}
}

func (h *CartHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.uc == nil || h.itemUC == nil {
		writeErr(w, http.StatusInternalServerError, "cart handler is not configured")
		return
	}

	caller, ok := middleware.Caller(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// /carts, /carts/{id}, /carts/{id}/items
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/carts"), "/")
	segs := []string{}
	if rest != "" {
		segs = strings.Split(rest, "/")
	}

	switch {
	case len(segs) == 0 && r.Method == http.MethodGet:
		h.handleList(w, r)
	case len(segs) == 0 && r.Method == http.MethodPost:
		h.handleCreate(w, r, caller)
	case len(segs) == 1 && r.Method == http.MethodGet:
		h.handleGet(w, r, segs[0])
	case len(segs) == 1 && r.Method == http.MethodDelete:
		h.handleDelete(w, r, segs[0], caller)
	case len(segs) == 2 && segs[1] == "items" && r.Method == http.MethodGet:
		h.handleListItems(w, r, segs[0])
	case len(segs) == 2 && segs[1] == "items" && r.Method == http.MethodPost:
		h.handleAddItem(w, r, segs[0], caller)
	default:
		// unknown path shapes are 404; known paths with the wrong verb are 405
		if len(segs) > 2 || (len(segs) == 2 && segs[1] != "items") {
			writeErr(w, http.StatusNotFound, "not found")
			return
		}
		methodNotAllowed(w)
	}
}

func (h *CartHandler) handleList(w http.ResponseWriter, r *http.Request) {
	carts, err := h.uc.List(r.Context())
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, carts)
}

func (h *CartHandler) handleCreate(w http.ResponseWriter, r *http.Request, caller common.Identity) {
	c, err := h.uc.Create(r.Context(), caller)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *CartHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	c, err := h.uc.Get(r.Context(), id)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string, caller common.Identity) {
	c, err := h.uc.Delete(r.Context(), id, caller)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CartHandler) handleListItems(w http.ResponseWriter, r *http.Request, cartID string) {
	items, err := h.itemUC.ListByCart(r.Context(), cartID)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *CartHandler) handleAddItem(w http.ResponseWriter, r *http.Request, cartID string, caller common.Identity) {
	var p itemdom.Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json body")
		return
	}

	it, err := h.itemUC.Add(r.Context(), p, cartID, caller)
	if err != nil {
		writeDomainErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}
