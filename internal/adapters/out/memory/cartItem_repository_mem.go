// internal/adapters/out/memory/cartItem_repository_mem.go
package memory

import (
	"context"
	"sort"
	"sync"

	itemdom "cartledger/internal/domain/cartitem"
)

// CartItemRepositoryMem keeps cart items in a mutex-guarded map, lexical
// iteration order by id.
type CartItemRepositoryMem struct {
	mu    sync.RWMutex
	store map[string]itemdom.CartItem
}

func NewCartItemRepositoryMem() *CartItemRepositoryMem {
	return &CartItemRepositoryMem{store: make(map[string]itemdom.CartItem)}
}

func (r *CartItemRepositoryMem) GetByID(_ context.Context, id string) (itemdom.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.store[id]
	if !ok {
		return itemdom.CartItem{}, itemdom.ErrNotFound
	}
	return cloneItem(it), nil
}

func (r *CartItemRepositoryMem) Put(_ context.Context, it itemdom.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[it.ID] = cloneItem(it)
	return nil
}

func (r *CartItemRepositoryMem) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, id)
	return nil
}

func (r *CartItemRepositoryMem) ListAll(_ context.Context) ([]itemdom.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]itemdom.CartItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneItem(r.store[id]))
	}
	return out, nil
}

func cloneItem(it itemdom.CartItem) itemdom.CartItem {
	cp := it
	if it.UpdatedAt != nil {
		t := *it.UpdatedAt
		cp.UpdatedAt = &t
	}
	return cp
}
