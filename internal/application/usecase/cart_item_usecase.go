// internal/application/usecase/cart_item_usecase.go
package usecase

import (
	"context"

	cartdom "cartledger/internal/domain/cart"
	itemdom "cartledger/internal/domain/cartitem"
	"cartledger/internal/domain/common"
)

// CartItemUsecase coordinates item-level operations and keeps the owning
// cart's derived total consistent after every mutation.
type CartItemUsecase struct {
	carts cartdom.Repository
	items itemdom.Repository
	clock Clock
	ids   IDSource
}

func NewCartItemUsecase(carts cartdom.Repository, items itemdom.Repository) *CartItemUsecase {
	return &CartItemUsecase{
		carts: carts,
		items: items,
		clock: systemClock{},
		ids:   randomIDSource{},
	}
}

// NewCartItemUsecaseWithDeps is useful for tests.
func NewCartItemUsecaseWithDeps(carts cartdom.Repository, items itemdom.Repository, clock Clock, ids IDSource) *CartItemUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if ids == nil {
		ids = randomIDSource{}
	}
	return &CartItemUsecase{carts: carts, items: items, clock: clock, ids: ids}
}

// Add creates a new item in the cart. All checks run before any mutation:
// id syntax, payload rules (every violation reported), cart existence,
// then ownership.
func (uc *CartItemUsecase) Add(ctx context.Context, p itemdom.Payload, cartID string, caller common.Identity) (itemdom.CartItem, error) {
	if !common.IsCanonicalID(cartID) {
		return itemdom.CartItem{}, common.ErrInvalidID
	}
	if v := p.Validate(); len(v) > 0 {
		return itemdom.CartItem{}, &itemdom.ValidationError{Violations: v}
	}

	c, err := uc.carts.GetByID(ctx, cartID)
	if err != nil {
		return itemdom.CartItem{}, err
	}
	if !c.OwnedBy(caller) {
		return itemdom.CartItem{}, common.ErrUnauthorized
	}

	now := uc.clock.Now()
	it := itemdom.New(uc.ids.NewID(), c.ID, p, now)
	if err := uc.items.Put(ctx, it); err != nil {
		return itemdom.CartItem{}, err
	}

	total, err := uc.computeTotalPrice(ctx, c.ID)
	if err != nil {
		return itemdom.CartItem{}, err
	}
	c.AppendItemID(it.ID)
	c.Touch(total, now)
	if err := uc.carts.Put(ctx, c); err != nil {
		return itemdom.CartItem{}, err
	}

	return it, nil
}

// Update merges the payload over an existing item (name/price/quantity
// replaced, id/cartId/createdAt preserved) and refreshes the owning
// cart's total. A missing owning cart is an inconsistent-state guard and
// surfaces as cart.ErrNotFound.
func (uc *CartItemUsecase) Update(ctx context.Context, p itemdom.Payload, itemID string, caller common.Identity) (itemdom.CartItem, error) {
	if !common.IsCanonicalID(itemID) {
		return itemdom.CartItem{}, common.ErrInvalidID
	}
	if v := p.Validate(); len(v) > 0 {
		return itemdom.CartItem{}, &itemdom.ValidationError{Violations: v}
	}

	it, err := uc.items.GetByID(ctx, itemID)
	if err != nil {
		return itemdom.CartItem{}, err
	}
	c, err := uc.carts.GetByID(ctx, it.CartID)
	if err != nil {
		return itemdom.CartItem{}, err
	}
	if !c.OwnedBy(caller) {
		return itemdom.CartItem{}, common.ErrUnauthorized
	}

	now := uc.clock.Now()
	it.Apply(p, now)
	if err := uc.items.Put(ctx, it); err != nil {
		return itemdom.CartItem{}, err
	}

	total, err := uc.computeTotalPrice(ctx, c.ID)
	if err != nil {
		return itemdom.CartItem{}, err
	}
	c.Touch(total, now)
	if err := uc.carts.Put(ctx, c); err != nil {
		return itemdom.CartItem{}, err
	}

	return it, nil
}

// ListByCart returns every item whose CartID equals cartID, in store
// iteration order.
func (uc *CartItemUsecase) ListByCart(ctx context.Context, cartID string) ([]itemdom.CartItem, error) {
	if !common.IsCanonicalID(cartID) {
		return nil, common.ErrInvalidID
	}
	if _, err := uc.carts.GetByID(ctx, cartID); err != nil {
		return nil, err
	}
	return uc.scanByCart(ctx, cartID)
}

// computeTotalPrice recomputes the cart total from scratch on every call
// (full scan filtered on CartID, never an incremental accumulator), so it
// is always consistent with the actual item contents.
func (uc *CartItemUsecase) computeTotalPrice(ctx context.Context, cartID string) (float64, error) {
	items, err := uc.scanByCart(ctx, cartID)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total, nil
}

func (uc *CartItemUsecase) scanByCart(ctx context.Context, cartID string) ([]itemdom.CartItem, error) {
	all, err := uc.items.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]itemdom.CartItem, 0, len(all))
	for _, it := range all {
		if it.CartID == cartID {
			out = append(out, it)
		}
	}
	return out, nil
}
