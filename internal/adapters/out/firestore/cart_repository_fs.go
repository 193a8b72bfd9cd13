// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "cartledger/internal/domain/cart"
	"cartledger/internal/domain/common"
)

// CartRepositoryFS implements cart.Repository on Firestore.
//
// Collection design:
// - collection: carts
// - docId: cart id
// - fields: id, owner, itemIds, totalPrice, createdAt, updatedAt
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection("carts")
}

func (r *CartRepositoryFS) GetByID(ctx context.Context, id string) (cartdom.Cart, error) {
	if r.Client == nil {
		return cartdom.Cart{}, errors.New("cart_repository_fs: firestore client is nil")
	}

	snap, err := r.col().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return cartdom.Cart{}, cartdom.ErrNotFound
		}
		return cartdom.Cart{}, common.WrapStorage("carts.get", err)
	}

	var c cartdom.Cart
	if err := snap.DataTo(&c); err != nil {
		return cartdom.Cart{}, common.WrapStorage("carts.decode", err)
	}
	// docId is the source of truth for the record key.
	c.ID = snap.Ref.ID
	return c, nil
}

func (r *CartRepositoryFS) Put(ctx context.Context, c cartdom.Cart) error {
	if r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	if _, err := r.col().Doc(c.ID).Set(ctx, c); err != nil {
		return common.WrapStorage("carts.put", err)
	}
	return nil
}

func (r *CartRepositoryFS) Delete(ctx context.Context, id string) error {
	if r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}

	if _, err := r.col().Doc(id).Delete(ctx); err != nil {
		return common.WrapStorage("carts.delete", err)
	}
	return nil
}

func (r *CartRepositoryFS) ListAll(ctx context.Context) ([]cartdom.Cart, error) {
	if r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}

	it := r.col().Documents(ctx)
	defer it.Stop()

	out := []cartdom.Cart{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, common.WrapStorage("carts.scan", err)
		}

		var c cartdom.Cart
		if err := doc.DataTo(&c); err != nil {
			return nil, common.WrapStorage("carts.decode", err)
		}
		c.ID = doc.Ref.ID
		out = append(out, c)
	}
	return out, nil
}
