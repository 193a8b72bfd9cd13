// internal/adapters/out/db/cart_repository_pg.go
package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	cartdom "cartledger/internal/domain/cart"
	"cartledger/internal/domain/common"
)

// CartRepositoryPG implements cart.Repository on Postgres.
//
// Table:
//
//	CREATE TABLE carts (
//	  id          text PRIMARY KEY,
//	  owner_id    text NOT NULL,
//	  item_ids    text[] NOT NULL DEFAULT '{}',
//	  total_price double precision NOT NULL DEFAULT 0,
//	  created_at  timestamptz NOT NULL,
//	  updated_at  timestamptz
//	);
type CartRepositoryPG struct {
	DB *sql.DB
}

func NewCartRepositoryPG(db *sql.DB) *CartRepositoryPG {
	return &CartRepositoryPG{DB: db}
}

func (r *CartRepositoryPG) GetByID(ctx context.Context, id string) (cartdom.Cart, error) {
	const q = `
SELECT id, owner_id, item_ids, total_price, created_at, updated_at
FROM carts
WHERE id = $1
`
	c, err := scanCart(r.DB.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cartdom.Cart{}, cartdom.ErrNotFound
		}
		return cartdom.Cart{}, common.WrapStorage("carts.get", err)
	}
	return c, nil
}

func (r *CartRepositoryPG) Put(ctx context.Context, c cartdom.Cart) error {
	const q = `
INSERT INTO carts (id, owner_id, item_ids, total_price, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
  owner_id    = EXCLUDED.owner_id,
  item_ids    = EXCLUDED.item_ids,
  total_price = EXCLUDED.total_price,
  created_at  = EXCLUDED.created_at,
  updated_at  = EXCLUDED.updated_at
`
	var updatedAt sql.NullTime
	if c.UpdatedAt != nil {
		updatedAt = sql.NullTime{Time: *c.UpdatedAt, Valid: true}
	}

	_, err := r.DB.ExecContext(ctx, q,
		c.ID,
		string(c.Owner),
		pq.Array(c.ItemIDs),
		c.TotalPrice,
		c.CreatedAt,
		updatedAt,
	)
	if err != nil {
		return common.WrapStorage("carts.put", err)
	}
	return nil
}

func (r *CartRepositoryPG) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM carts WHERE id = $1`
	if _, err := r.DB.ExecContext(ctx, q, id); err != nil {
		return common.WrapStorage("carts.delete", err)
	}
	return nil
}

func (r *CartRepositoryPG) ListAll(ctx context.Context) ([]cartdom.Cart, error) {
	const q = `
SELECT id, owner_id, item_ids, total_price, created_at, updated_at
FROM carts
ORDER BY id
`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, common.WrapStorage("carts.scan", err)
	}
	defer rows.Close()

	out := []cartdom.Cart{}
	for rows.Next() {
		c, err := scanCart(rows)
		if err != nil {
			return nil, common.WrapStorage("carts.scan", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, common.WrapStorage("carts.scan", err)
	}
	return out, nil
}

func scanCart(row rowScanner) (cartdom.Cart, error) {
	var (
		c         cartdom.Cart
		owner     string
		itemIDs   pq.StringArray
		updatedAt sql.NullTime
	)
	if err := row.Scan(&c.ID, &owner, &itemIDs, &c.TotalPrice, &c.CreatedAt, &updatedAt); err != nil {
		return cartdom.Cart{}, err
	}
	c.Owner = common.Identity(owner)
	c.ItemIDs = []string(itemIDs)
	if c.ItemIDs == nil {
		c.ItemIDs = []string{}
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		c.UpdatedAt = &t
	}
	return c, nil
}
