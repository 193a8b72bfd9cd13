// internal/domain/cartitem/repository_port.go
package cartitem

import "context"

// Repository is the persistence port for CartItem.
//
// Storage shape mirrors the cart port: one logical table "cart_items"
// keyed by item id, point get / put / delete and a full-values scan.
// There is no by-cart index; callers filter the scan on CartID.
type Repository interface {
	GetByID(ctx context.Context, id string) (CartItem, error)

	// Put saves the item (insert or replace).
	Put(ctx context.Context, it CartItem) error

	Delete(ctx context.Context, id string) error

	// ListAll returns every item in store iteration order.
	ListAll(ctx context.Context) ([]CartItem, error)
}
