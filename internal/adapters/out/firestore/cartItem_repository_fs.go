// internal/adapters/out/firestore/cartItem_repository_fs.go
package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	itemdom "cartledger/internal/domain/cartitem"
	"cartledger/internal/domain/common"
)

// CartItemRepositoryFS implements cartitem.Repository on Firestore.
//
// Collection design:
// - collection: cart_items
// - docId: item id
// - fields: id, cartId, name, price, quantity, createdAt, updatedAt
//
// No composite index on cartId: by-cart queries are full scans filtered
// in the application layer, matching the substrate contract.
type CartItemRepositoryFS struct {
	Client *firestore.Client
}

func NewCartItemRepositoryFS(client *firestore.Client) *CartItemRepositoryFS {
	return &CartItemRepositoryFS{Client: client}
}

func (r *CartItemRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("cart_items")
}

func (r *CartItemRepositoryFS) GetByID(ctx context.Context, id string) (itemdom.CartItem, error) {
	if r.Client == nil {
		return itemdom.CartItem{}, errors.New("cartItem_repository_fs: firestore client is nil")
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return itemdom.CartItem{}, itemdom.ErrNotFound
		}
		return itemdom.CartItem{}, common.WrapStorage("cart_items.get", err)
	}

	var it itemdom.CartItem
	if err := snap.DataTo(&it); err != nil {
		return itemdom.CartItem{}, common.WrapStorage("cart_items.decode", err)
	}
	it.ID = snap.Ref.ID
	return it, nil
}

func (r *CartItemRepositoryFS) Put(ctx context.Context, it itemdom.CartItem) error {
	if r.Client == nil {
		return errors.New("cartItem_repository_fs: firestore client is nil")
	}

	if _, err := r.col().Doc(it.ID).Set(ctx, it); err != nil {
		return common.WrapStorage("cart_items.put", err)
	}
	return nil
}

func (r *CartItemRepositoryFS) Delete(ctx context.Context, id string) error {
	if r.Client == nil {
		return errors.New("cartItem_repository_fs: firestore client is nil")
	}

	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return common.WrapStorage("cart_items.delete", err)
	}
	return nil
}

func (r *CartItemRepositoryFS) ListAll(ctx context.Context) ([]itemdom.CartItem, error) {
	if r.Client == nil {
		return nil, errors.New("cartItem_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	out := []itemdom.CartItem{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, common.WrapStorage("cart_items.scan", err)
		}

		var item itemdom.CartItem
		if err := doc.DataTo(&item); err != nil {
			return nil, common.WrapStorage("cart_items.decode", err)
		}
		item.ID = doc.Ref.ID
		out = append(out, item)
	}
	return out, nil
}
