// internal/domain/cartitem/entity.go
package cartitem

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("cart item: not found")
)

// CartItem represents one line item belonging to exactly one cart.
// ID, CartID and CreatedAt are immutable after creation.
type CartItem struct {
	ID     string `json:"id" firestore:"id"`
	CartID string `json:"cartId" firestore:"cartId"`

	Name     string  `json:"name" firestore:"name"`
	Price    float64 `json:"price" firestore:"price"`
	Quantity int     `json:"quantity" firestore:"quantity"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`

	// UpdatedAt is nil until the first update.
	UpdatedAt *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt"`
}

// Subtotal is the line contribution to the cart total.
func (it CartItem) Subtotal() float64 {
	return it.Price * float64(it.Quantity)
}

// Payload carries the caller-settable fields accepted on create/update.
// Missing fields decode to zero values and fail validation; they are
// never defaulted.
type Payload struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Validate is a pure check. It returns one message per violated rule,
// in a stable order, and performs no mutation.
func (p Payload) Validate() []string {
	var violations []string
	if strings.TrimSpace(p.Name) == "" {
		violations = append(violations, "name must not be blank")
	}
	if p.Price <= 0 {
		violations = append(violations, "price must be greater than 0")
	}
	if p.Quantity <= 0 {
		violations = append(violations, "quantity must be greater than 0")
	}
	return violations
}

// New creates an item from a validated payload.
func New(id, cartID string, p Payload, now time.Time) CartItem {
	return CartItem{
		ID:        id,
		CartID:    cartID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
		CreatedAt: now,
	}
}

// Apply merges the caller-settable fields over the item and stamps the
// mutation time. ID, CartID and CreatedAt are preserved.
func (it *CartItem) Apply(p Payload, now time.Time) {
	it.Name = p.Name
	it.Price = p.Price
	it.Quantity = p.Quantity
	t := now
	it.UpdatedAt = &t
}

// ValidationError reports every violated payload rule, not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "cart item: invalid payload: " + strings.Join(e.Violations, "; ")
}
