// internal/adapters/out/db/cartItem_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"

	itemdom "cartledger/internal/domain/cartitem"
	"cartledger/internal/domain/common"
)

// CartItemRepositoryPG implements cartitem.Repository on Postgres.
//
// Table:
//
//	CREATE TABLE cart_items (
//	  id         text PRIMARY KEY,
//	  cart_id    text NOT NULL,
//	  name       text NOT NULL,
//	  price      double precision NOT NULL,
//	  quantity   integer NOT NULL,
//	  created_at timestamptz NOT NULL,
//	  updated_at timestamptz
//	);
//
// Deliberately no index on cart_id: by-cart lookups go through ListAll
// and are filtered in the application layer, matching the substrate
// contract the core is written against.
type CartItemRepositoryPG struct {
	DB *sql.DB
}

func NewCartItemRepositoryPG(db *sql.DB) *CartItemRepositoryPG {
	return &CartItemRepositoryPG{DB: db}
}

func (r *CartItemRepositoryPG) GetByID(ctx context.Context, id string) (itemdom.CartItem, error) {
	const q = `
SELECT id, cart_id, name, price, quantity, created_at, updated_at
FROM cart_items
WHERE id = $1
`
	it, err := scanCartItem(r.DB.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return itemdom.CartItem{}, itemdom.ErrNotFound
		}
		return itemdom.CartItem{}, common.WrapStorage("cart_items.get", err)
	}
	return it, nil
}

func (r *CartItemRepositoryPG) Put(ctx context.Context, it itemdom.CartItem) error {
	const q = `
INSERT INTO cart_items (id, cart_id, name, price, quantity, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
  cart_id    = EXCLUDED.cart_id,
  name       = EXCLUDED.name,
  price      = EXCLUDED.price,
  quantity   = EXCLUDED.quantity,
  created_at = EXCLUDED.created_at,
  updated_at = EXCLUDED.updated_at
`
	var updatedAt sql.NullTime
	if it.UpdatedAt != nil {
		updatedAt = sql.NullTime{Time: *it.UpdatedAt, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, q,
		it.ID,
		it.CartID,
		it.Name,
		it.Price,
		it.Quantity,
		it.CreatedAt,
		updatedAt,
	)
	if err != nil {
		return common.WrapStorage("cart_items.put", err)
	}
	return nil
}

func (r *CartItemRepositoryPG) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM cart_items WHERE id = $1`
	if _, err := r.DB.ExecContext(ctx, q, id); err != nil {
		return common.WrapStorage("cart_items.delete", err)
	}
	return nil
}

func (r *CartItemRepositoryPG) ListAll(ctx context.Context) ([]itemdom.CartItem, error) {
	const q = `
SELECT id, cart_id, name, price, quantity, created_at, updated_at
FROM cart_items
ORDER BY id
`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, common.WrapStorage("cart_items.scan", err)
	}
	defer rows.Close()

	out := []itemdom.CartItem{}
	for rows.Next() {
		it, err := scanCartItem(rows)
		if err != nil {
			return nil, common.WrapStorage("cart_items.scan", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("cart_items.scan", err)
	}
	return out, nil
}

func scanCartItem(row rowScanner) (itemdom.CartItem, error) {
	var (
		it        itemdom.CartItem
		updatedAt sql.NullTime
	)
	if err := row.Scan(&it.ID, &it.CartID, &it.Name, &it.Price, &it.Quantity, &it.CreatedAt, &updatedAt); err != nil {
		return itemdom.CartItem{}, err
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		it.UpdatedAt = &t
	}
	return it, nil
}
