// internal/adapters/out/memory/cart_repository_mem.go
package memory

import (
	"context"
	"sort"
	"sync"

	cartdom "cartledger/internal/domain/cart"
)

// CartRepositoryMem keeps carts in a mutex-guarded map. Used by tests and
// as the local dev substrate when neither Firestore nor Postgres is
// configured. Iteration order is lexical by id, mirroring the ordered
// stores the other adapters sit on.
type CartRepositoryMem struct {
	mu    sync.RWMutex
	store map[string]cartdom.Cart
}

func NewCartRepositoryMem() *CartRepositoryMem {
	return &CartRepositoryMem{store: make(map[string]cartdom.Cart)}
}

func (r *CartRepositoryMem) GetByID(_ context.Context, id string) (cartdom.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.store[id]
	if !ok {
		return cartdom.Cart{}, cartdom.ErrNotFound
	}
	return cloneCart(c), nil
}

func (r *CartRepositoryMem) Put(_ context.Context, c cartdom.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[c.ID] = cloneCart(c)
	return nil
}

func (r *CartRepositoryMem) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, id)
	return nil
}

func (r *CartRepositoryMem) ListAll(_ context.Context) ([]cartdom.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]cartdom.Cart, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneCart(r.store[id]))
	}
	return out, nil
}

// cloneCart copies slice/pointer fields so callers cannot mutate stored
// state behind the repository's back.
func cloneCart(c cartdom.Cart) cartdom.Cart {
	cp := c
	cp.ItemIDs = append([]string{}, c.ItemIDs...)
	if c.UpdatedAt != nil {
		t := *c.UpdatedAt
		cp.UpdatedAt = &t
	}
	return cp
}
