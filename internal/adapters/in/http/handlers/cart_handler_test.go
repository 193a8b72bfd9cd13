// internal/adapters/in/http/handlers/cart_handler_test.go
package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cartledger/internal/adapters/in/http/handlers"
	"cartledger/internal/adapters/in/http/middleware"
	"cartledger/internal/adapters/out/memory"
	usecase "cartledger/internal/application/usecase"
	cartdom "cartledger/internal/domain/cart"
	itemdom "cartledger/internal/domain/cartitem"
	"cartledger/internal/domain/common"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestMux(t *testing.T) (*http.ServeMux, *usecase.CartUsecase) {
	t.Helper()

	carts := memory.NewCartRepositoryMem()
	items := memory.NewCartItemRepositoryMem()
	clock := fixedClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	cartUC := usecase.NewCartUsecaseWithDeps(carts, items, clock, nil)
	itemUC := usecase.NewCartItemUsecaseWithDeps(carts, items, clock, nil)

	mux := http.NewServeMux()
	cartHandler := handlers.NewCartHandler(cartUC, itemUC)
	mux.Handle("/carts", cartHandler)
	mux.Handle("/carts/", cartHandler)
	mux.Handle("/cart-items/", handlers.NewCartItemHandler(itemUC))
	return mux, cartUC
}

// do issues a request with the caller identity already in context,
// bypassing token verification (the middleware owns that concern).
func do(t *testing.T, mux *http.ServeMux, method, path, body string, caller common.Identity) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if caller != "" {
		r = r.WithContext(middleware.WithCaller(r.Context(), caller))
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartdom.Cart {
	t.Helper()
	var c cartdom.Cart
	if err := json.NewDecoder(w.Body).Decode(&c); err != nil {
		t.Fatalf("decode cart: %v", err)
	}
	return c
}

func TestCartEndpoints(t *testing.T) {
	mux, _ := newTestMux(t)
	u1 := common.Identity("user-1")
	u2 := common.Identity("user-2")

	// POST /carts
	w := do(t, mux, http.MethodPost, "/carts", "", u1)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: got %d, want 201 (%s)", w.Code, w.Body)
	}
	c := decodeCart(t, w)
	if c.Owner != u1 {
		t.Fatalf("owner: %+v", c)
	}

	// GET /carts
	w = do(t, mux, http.MethodGet, "/carts", "", u1)
	if w.Code != http.StatusOK {
		t.Fatalf("list: got %d, want 200", w.Code)
	}
	var carts []cartdom.Cart
	if err := json.NewDecoder(w.Body).Decode(&carts); err != nil || len(carts) != 1 {
		t.Fatalf("list decode: %v (%d carts)", err, len(carts))
	}

	// POST /carts/{id}/items
	w = do(t, mux, http.MethodPost, "/carts/"+c.ID+"/items", `{"name":"Pen","price":2.5,"quantity":3}`, u1)
	if w.Code != http.StatusCreated {
		t.Fatalf("add item: got %d, want 201 (%s)", w.Code, w.Body)
	}
	var it itemdom.CartItem
	if err := json.NewDecoder(w.Body).Decode(&it); err != nil {
		t.Fatalf("decode item: %v", err)
	}

	// GET /carts/{id} carries the recomputed total
	w = do(t, mux, http.MethodGet, "/carts/"+c.ID, "", u1)
	if got := decodeCart(t, w); got.TotalPrice != 7.5 {
		t.Fatalf("totalPrice: got %v, want 7.5", got.TotalPrice)
	}

	// PUT /cart-items/{id}
	w = do(t, mux, http.MethodPut, "/cart-items/"+it.ID, `{"name":"Pen","price":2.5,"quantity":5}`, u1)
	if w.Code != http.StatusOK {
		t.Fatalf("update item: got %d, want 200 (%s)", w.Code, w.Body)
	}
	w = do(t, mux, http.MethodGet, "/carts/"+c.ID, "", u1)
	if got := decodeCart(t, w); got.TotalPrice != 12.5 {
		t.Fatalf("totalPrice after update: got %v, want 12.5", got.TotalPrice)
	}

	// GET /carts/{id}/items
	w = do(t, mux, http.MethodGet, "/carts/"+c.ID+"/items", "", u1)
	if w.Code != http.StatusOK {
		t.Fatalf("list items: got %d, want 200", w.Code)
	}
	var items []itemdom.CartItem
	if err := json.NewDecoder(w.Body).Decode(&items); err != nil || len(items) != 1 {
		t.Fatalf("items decode: %v (%d items)", err, len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("item not updated: %+v", items[0])
	}

	// non-owner mutations are 403
	w = do(t, mux, http.MethodPost, "/carts/"+c.ID+"/items", `{"name":"Pad","price":1,"quantity":1}`, u2)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign add: got %d, want 403", w.Code)
	}
	w = do(t, mux, http.MethodDelete, "/carts/"+c.ID, "", u2)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign delete: got %d, want 403", w.Code)
	}

	// DELETE /carts/{id} by the owner cascades
	w = do(t, mux, http.MethodDelete, "/carts/"+c.ID, "", u1)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: got %d, want 200 (%s)", w.Code, w.Body)
	}
	w = do(t, mux, http.MethodGet, "/carts/"+c.ID, "", u1)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: got %d, want 404", w.Code)
	}
	w = do(t, mux, http.MethodGet, "/carts/"+c.ID+"/items", "", u1)
	if w.Code != http.StatusNotFound {
		t.Fatalf("list items after delete: got %d, want 404", w.Code)
	}
}

func TestCartEndpointErrors(t *testing.T) {
	mux, _ := newTestMux(t)
	u1 := common.Identity("user-1")

	t.Run("missing caller -> 401", func(t *testing.T) {
		w := do(t, mux, http.MethodGet, "/carts", "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("got %d, want 401", w.Code)
		}
	})

	t.Run("malformed id -> 400", func(t *testing.T) {
		w := do(t, mux, http.MethodGet, "/carts/not-an-id", "", u1)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("got %d, want 400", w.Code)
		}
	})

	t.Run("absent cart -> 404", func(t *testing.T) {
		w := do(t, mux, http.MethodGet, "/carts/123e4567-e89b-12d3-a456-426614174000", "", u1)
		if w.Code != http.StatusNotFound {
			t.Fatalf("got %d, want 404", w.Code)
		}
	})

	t.Run("invalid payload -> 400 with every violation", func(t *testing.T) {
		w := do(t, mux, http.MethodPost, "/carts", "", u1)
		c := decodeCart(t, w)

		w = do(t, mux, http.MethodPost, "/carts/"+c.ID+"/items", `{"name":"  ","price":0,"quantity":0}`, u1)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("got %d, want 400 (%s)", w.Code, w.Body)
		}
		var resp struct {
			Violations []string `json:"violations"`
		}
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(resp.Violations) != 3 {
			t.Fatalf("violations: %v", resp.Violations)
		}
	})

	t.Run("known path with wrong verb -> 405", func(t *testing.T) {
		w := do(t, mux, http.MethodPut, "/carts", "", u1)
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("got %d, want 405", w.Code)
		}
		w = do(t, mux, http.MethodPut, "/carts/123e4567-e89b-12d3-a456-426614174000/items", "", u1)
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("items with PUT: got %d, want 405", w.Code)
		}
	})

	t.Run("unknown subpath -> 404", func(t *testing.T) {
		w := do(t, mux, http.MethodGet, "/carts/123e4567-e89b-12d3-a456-426614174000/unknown", "", u1)
		if w.Code != http.StatusNotFound {
			t.Fatalf("got %d, want 404", w.Code)
		}
		w = do(t, mux, http.MethodGet, "/carts/a/b/c", "", u1)
		if w.Code != http.StatusNotFound {
			t.Fatalf("deep path: got %d, want 404", w.Code)
		}
	})
}

// faultyCartRepo fails every scan the way an adapter surfaces a backend
// outage: cause wrapped as a storage error.
type faultyCartRepo struct {
	*memory.CartRepositoryMem
}

func (r *faultyCartRepo) ListAll(context.Context) ([]cartdom.Cart, error) {
	return nil, common.WrapStorage("carts.scan", errors.New("backend unavailable"))
}

func TestStorageFaultMapsTo500(t *testing.T) {
	carts := &faultyCartRepo{CartRepositoryMem: memory.NewCartRepositoryMem()}
	items := memory.NewCartItemRepositoryMem()
	clock := fixedClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	cartUC := usecase.NewCartUsecaseWithDeps(carts, items, clock, nil)
	itemUC := usecase.NewCartItemUsecaseWithDeps(carts, items, clock, nil)

	mux := http.NewServeMux()
	h := handlers.NewCartHandler(cartUC, itemUC)
	mux.Handle("/carts", h)
	mux.Handle("/carts/", h)

	w := do(t, mux, http.MethodGet, "/carts", "", common.Identity("user-1"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500 (%s)", w.Code, w.Body)
	}
}
