// internal/application/usecase/helpers_test.go
package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"cartledger/internal/adapters/out/memory"
	usecase "cartledger/internal/application/usecase"
	cartdom "cartledger/internal/domain/cart"
	itemdom "cartledger/internal/domain/cartitem"
	"cartledger/internal/domain/common"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func (c *fixedClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// seqIDs hands out deterministic canonical ids in lexical order.
type seqIDs struct {
	n int
}

func (s *seqIDs) NewID() string {
	s.n++
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", s.n)
}

type fixture struct {
	carts  *memory.CartRepositoryMem
	items  *memory.CartItemRepositoryMem
	clock  *fixedClock
	cartUC *usecase.CartUsecase
	itemUC *usecase.CartItemUsecase
}

func newFixture() *fixture {
	carts := memory.NewCartRepositoryMem()
	items := memory.NewCartItemRepositoryMem()
	clock := &fixedClock{now: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	ids := &seqIDs{}
	return &fixture{
		carts:  carts,
		items:  items,
		clock:  clock,
		cartUC: usecase.NewCartUsecaseWithDeps(carts, items, clock, ids),
		itemUC: usecase.NewCartItemUsecaseWithDeps(carts, items, clock, ids),
	}
}

func mustCreateCart(t *testing.T, f *fixture, owner common.Identity) cartdom.Cart {
	t.Helper()
	c, err := f.cartUC.Create(context.Background(), owner)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return c
}

func mustAddItem(t *testing.T, f *fixture, cartID string, owner common.Identity, p itemdom.Payload) itemdom.CartItem {
	t.Helper()
	it, err := f.itemUC.Add(context.Background(), p, cartID, owner)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	return it
}

// failRepos fail the test on any storage access; used to prove malformed
// ids are rejected before storage is touched.

type failCartRepo struct{ t *testing.T }

func (r failCartRepo) GetByID(context.Context, string) (cartdom.Cart, error) {
	r.t.Fatal("cart storage touched")
	return cartdom.Cart{}, nil
}
func (r failCartRepo) Put(context.Context, cartdom.Cart) error {
	r.t.Fatal("cart storage touched")
	return nil
}
func (r failCartRepo) Delete(context.Context, string) error {
	r.t.Fatal("cart storage touched")
	return nil
}
func (r failCartRepo) ListAll(context.Context) ([]cartdom.Cart, error) {
	r.t.Fatal("cart storage touched")
	return nil, nil
}

var errBackend = errors.New("backend unavailable")

// faultyItemRepo delegates to a real store but fails chosen operations
// the way an adapter would: cause wrapped as a storage error.
type faultyItemRepo struct {
	*memory.CartItemRepositoryMem
	failDeleteID string
	failList     bool
}

func (r *faultyItemRepo) Delete(ctx context.Context, id string) error {
	if id == r.failDeleteID {
		return common.WrapStorage("cart_items.delete", errBackend)
	}
	return r.CartItemRepositoryMem.Delete(ctx, id)
}

func (r *faultyItemRepo) ListAll(ctx context.Context) ([]itemdom.CartItem, error) {
	if r.failList {
		return nil, common.WrapStorage("cart_items.scan", errBackend)
	}
	return r.CartItemRepositoryMem.ListAll(ctx)
}

type failItemRepo struct{ t *testing.T }

func (r failItemRepo) GetByID(context.Context, string) (itemdom.CartItem, error) {
	r.t.Fatal("item storage touched")
	return itemdom.CartItem{}, nil
}
func (r failItemRepo) Put(context.Context, itemdom.CartItem) error {
	r.t.Fatal("item storage touched")
	return nil
}
func (r failItemRepo) Delete(context.Context, string) error {
	r.t.Fatal("item storage touched")
	return nil
}
func (r failItemRepo) ListAll(context.Context) ([]itemdom.CartItem, error) {
	r.t.Fatal("item storage touched")
	return nil, nil
}
