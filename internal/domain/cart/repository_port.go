// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is the persistence port for Cart.
//
// Storage shape:
// - one logical table "carts", keyed by cart id
// - point get / put / delete plus a full-values scan
// - no secondary indexes; relationship queries run over ListAll
//
// Not-found policy: GetByID returns ErrNotFound (never a nil-value
// success). All other failures surface as storage errors.
type Repository interface {
	GetByID(ctx context.Context, id string) (Cart, error)

	// Put saves the cart (insert or replace; last write wins).
	Put(ctx context.Context, c Cart) error

	Delete(ctx context.Context, id string) error

	// ListAll returns every cart in store iteration order.
	ListAll(ctx context.Context) ([]Cart, error)
}
