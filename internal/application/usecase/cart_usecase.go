// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"

	cartdom "cartledger/internal/domain/cart"
	itemdom "cartledger/internal/domain/cartitem"
	"cartledger/internal/domain/common"
)

// CartUsecase coordinates cart-level operations: listing, lookup,
// creation and owner-only cascade deletion.
type CartUsecase struct {
	carts cartdom.Repository
	items itemdom.Repository
	clock Clock
	ids   IDSource
}

func NewCartUsecase(carts cartdom.Repository, items itemdom.Repository) *CartUsecase {
	return &CartUsecase{
		carts: carts,
		items: items,
		clock: systemClock{},
		ids:   randomIDSource{},
	}
}

// NewCartUsecaseWithDeps is useful for tests.
func NewCartUsecaseWithDeps(carts cartdom.Repository, items itemdom.Repository, clock Clock, ids IDSource) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if ids == nil {
		ids = randomIDSource{}
	}
	return &CartUsecase{carts: carts, items: items, clock: clock, ids: ids}
}

// List returns all carts in store iteration order.
func (uc *CartUsecase) List(ctx context.Context) ([]cartdom.Cart, error) {
	return uc.carts.ListAll(ctx)
}

// Get returns the cart with id.
// Returns common.ErrInvalidID before any storage access if id is malformed.
func (uc *CartUsecase) Get(ctx context.Context, id string) (cartdom.Cart, error) {
	if !common.IsCanonicalID(id) {
		return cartdom.Cart{}, common.ErrInvalidID
	}
	return uc.carts.GetByID(ctx, id)
}

// Create allocates a fresh cart owned by caller and persists it.
func (uc *CartUsecase) Create(ctx context.Context, caller common.Identity) (cartdom.Cart, error) {
	c := cartdom.New(uc.ids.NewID(), caller, uc.clock.Now())
	if err := uc.carts.Put(ctx, c); err != nil {
		return cartdom.Cart{}, err
	}
	return c, nil
}

// Delete removes the cart and cascades over every item referencing it.
// Only the recorded owner may delete.
//
// Deletion order is items-then-cart: a fault mid-cascade leaves the cart
// present with a partial item set, which is consistent and retryable. The
// substrate offers no cross-key transactions, so the window is surfaced
// as a storage error rather than hidden.
func (uc *CartUsecase) Delete(ctx context.Context, id string, caller common.Identity) (cartdom.Cart, error) {
	if !common.IsCanonicalID(id) {
		return cartdom.Cart{}, common.ErrInvalidID
	}

	c, err := uc.carts.GetByID(ctx, id)
	if err != nil {
		return cartdom.Cart{}, err
	}
	if !c.OwnedBy(caller) {
		return cartdom.Cart{}, common.ErrUnauthorized
	}

	// Collect members via the reverse foreign key, not the ItemIDs cache:
	// the scan is the relation of record.
	all, err := uc.items.ListAll(ctx)
	if err != nil {
		return cartdom.Cart{}, err
	}
	for _, it := range all {
		if it.CartID != c.ID {
			continue
		}
		if err := uc.items.Delete(ctx, it.ID); err != nil {
			return cartdom.Cart{}, err
		}
	}

	if err := uc.carts.Delete(ctx, c.ID); err != nil {
		return cartdom.Cart{}, err
	}
	return c, nil
}
