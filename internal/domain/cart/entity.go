// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"time"

	"cartledger/internal/domain/common"
)

var (
	ErrNotFound = errors.New("cart: not found")
)

// Cart represents "a cart document".
//   - docId = cart id (random canonical identifier)
//   - Owner is the identity recorded at creation; immutable afterwards.
//   - ItemIDs caches the ids of the items referencing this cart, in
//     insertion order. Membership truth is the reverse foreign key
//     (CartItem.CartID); this field exists for the external record shape.
//   - TotalPrice is derived. It is never settable by a caller and is
//     recomputed from a full item scan after every item mutation.
type Cart struct {
	ID         string          `json:"id" firestore:"id"`
	Owner      common.Identity `json:"owner" firestore:"owner"`
	ItemIDs    []string        `json:"itemIds" firestore:"itemIds"`
	TotalPrice float64         `json:"totalPrice" firestore:"totalPrice"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`

	// UpdatedAt is nil until the first item add/update.
	UpdatedAt *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt"`
}

// New creates an empty cart owned by owner.
func New(id string, owner common.Identity, now time.Time) Cart {
	return Cart{
		ID:         id,
		Owner:      owner,
		ItemIDs:    []string{},
		TotalPrice: 0,
		CreatedAt:  now,
	}
}

// OwnedBy reports whether caller is the recorded owner (value equality).
func (c *Cart) OwnedBy(caller common.Identity) bool {
	return c.Owner == caller
}

// AppendItemID records a new item id in insertion order.
func (c *Cart) AppendItemID(itemID string) {
	if c.ItemIDs == nil {
		c.ItemIDs = []string{}
	}
	c.ItemIDs = append(c.ItemIDs, itemID)
}

// Touch stamps the mutation time and the recomputed total.
func (c *Cart) Touch(total float64, now time.Time) {
	t := now
	c.UpdatedAt = &t
	c.TotalPrice = total
}
