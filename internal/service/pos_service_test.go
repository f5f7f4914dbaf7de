package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mdSHash/SleekSell/internal/model"
	"github.com/mdSHash/SleekSell/internal/persist"
	"github.com/mdSHash/SleekSell/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore is an in-memory persist.Store with injectable failures.
type stubStore struct {
	records []persist.Record
	loadErr error
	saveErr error
	saves   int
}

func (s *stubStore) Load(context.Context) ([]persist.Record, error) {
	return s.records, s.loadErr
}

func (s *stubStore) Save(_ context.Context, records []persist.Record) error {
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.records = records
	return nil
}

func (s *stubStore) Ping(context.Context) error { return nil }

func newTestService(t *testing.T, st persist.Store) (POSService, *store.Inventory) {
	t.Helper()
	inv := store.NewInventory()
	inv.AddOrMerge(model.Product{ID: "P1", Name: "Widget", Price: decimal.NewFromFloat(10.00), OnHand: 5})
	svc := NewPOSService(inv, store.NewCart(), store.NewTransactionLog(), st, nil)
	return svc, inv
}

func TestAddToCartReservesStock(t *testing.T) {
	svc, inv := newTestService(t, &stubStore{})
	ctx := context.Background()

	cartLine, err := svc.AddToCart(ctx, "P1", 3)

	require.NoError(t, err)
	assert.Equal(t, "Widget", cartLine.Name)
	assert.Equal(t, 3, cartLine.Quantity)
	assert.True(t, cartLine.UnitPrice.Equal(decimal.NewFromFloat(10.00)))

	p, _ := inv.Get("P1")
	assert.Equal(t, 2, p.Available())
	assert.Equal(t, 5, p.OnHand, "stock deduction only happens at checkout")

	_, total := svc.CartContents(ctx)
	assert.True(t, total.Equal(decimal.NewFromFloat(30.00)), "got %s", total)
}

func TestAddToCartInsufficientStock(t *testing.T) {
	svc, inv := newTestService(t, &stubStore{})
	ctx := context.Background()
	_, err := svc.AddToCart(ctx, "P1", 3)
	require.NoError(t, err)

	_, err = svc.AddToCart(ctx, "P1", 5)

	require.ErrorIs(t, err, store.ErrInsufficientStock)
	p, _ := inv.Get("P1")
	assert.Equal(t, 2, p.Available(), "failed add must leave reservations unchanged")
	lines, _ := svc.CartContents(ctx)
	assert.Len(t, lines, 1, "failed add must not append a cart line")
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc, _ := newTestService(t, &stubStore{})

	_, err := svc.AddToCart(context.Background(), "ghost", 1)

	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestRemoveFromCartReleasesReservation(t *testing.T) {
	svc, inv := newTestService(t, &stubStore{})
	ctx := context.Background()
	_, err := svc.AddToCart(ctx, "P1", 3)
	require.NoError(t, err)

	removed, err := svc.RemoveFromCart(ctx, "P1")

	require.NoError(t, err)
	assert.Equal(t, 3, removed.Quantity)
	p, _ := inv.Get("P1")
	assert.Equal(t, 5, p.Available())
	lines, total := svc.CartContents(ctx)
	assert.Empty(t, lines)
	assert.True(t, total.IsZero())
}

func TestAbandonCartReleasesEverything(t *testing.T) {
	svc, inv := newTestService(t, &stubStore{})
	ctx := context.Background()
	_, err := svc.AddToCart(ctx, "P1", 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "P1", 1)
	require.NoError(t, err)

	cleared, err := svc.AbandonCart(ctx)

	require.NoError(t, err)
	assert.Len(t, cleared, 2)
	p, _ := inv.Get("P1")
	assert.Equal(t, 5, p.Available())
	assert.Equal(t, 0, p.Reserved)
}

func TestCheckoutEmptyCart(t *testing.T) {
	st := &stubStore{}
	svc, _ := newTestService(t, st)

	_, err := svc.Checkout(context.Background(), "")

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, st.saves, "rejected checkout must not persist")
}

func TestCheckoutCommitsAndPersists(t *testing.T) {
	st := &stubStore{}
	svc, inv := newTestService(t, st)
	ctx := context.Background()
	_, err := svc.AddToCart(ctx, "P1", 3)
	require.NoError(t, err)

	txn, err := svc.Checkout(ctx, "")

	require.NoError(t, err)
	require.NotNil(t, txn)
	assert.Equal(t, 1, txn.ID)
	assert.True(t, txn.Total.Equal(decimal.NewFromFloat(30.00)), "got %s", txn.Total)
	require.Len(t, txn.Lines, 1)
	assert.Equal(t, 3, txn.Lines[0].Quantity)

	// Stock is permanently deducted and the cart reset.
	p, _ := inv.Get("P1")
	assert.Equal(t, 2, p.OnHand)
	assert.Equal(t, 0, p.Reserved)
	lines, _ := svc.CartContents(ctx)
	assert.Empty(t, lines)

	// Persisted snapshot reflects the post-sale stock.
	require.Equal(t, 1, st.saves)
	require.Len(t, st.records, 1)
	assert.Equal(t, 2, st.records[0].Quantity)

	last, ok := svc.LastTransaction(ctx)
	require.True(t, ok)
	assert.Equal(t, txn.ID, last.ID)
}

func TestCheckoutSequentialIDs(t *testing.T) {
	svc, _ := newTestService(t, &stubStore{})
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		_, err := svc.AddToCart(ctx, "P1", 1)
		require.NoError(t, err)
		txn, err := svc.Checkout(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, want, txn.ID)
	}

	assert.Len(t, svc.ListTransactions(ctx), 3)
}

func TestCheckoutSaveFailureStillCommits(t *testing.T) {
	st := &stubStore{saveErr: errors.New("disk full")}
	svc, inv := newTestService(t, st)
	ctx := context.Background()
	_, err := svc.AddToCart(ctx, "P1", 3)
	require.NoError(t, err)

	txn, err := svc.Checkout(ctx, "")

	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "save", pErr.Op)

	// The sale itself went through: transaction recorded, stock deducted,
	// cart cleared. Only the snapshot save needs retrying.
	require.NotNil(t, txn)
	assert.Equal(t, 1, txn.ID)
	p, _ := inv.Get("P1")
	assert.Equal(t, 2, p.OnHand)
	lines, _ := svc.CartContents(ctx)
	assert.Empty(t, lines)
	_, ok := svc.LastTransaction(ctx)
	assert.True(t, ok)

	// Retry path after the backend recovers.
	st.saveErr = nil
	require.NoError(t, svc.SaveInventory(ctx))
	require.Len(t, st.records, 1)
	assert.Equal(t, 2, st.records[0].Quantity)
}

func TestLoadInventoryMergesRecords(t *testing.T) {
	st := &stubStore{records: []persist.Record{
		{ProductID: "P1", Name: "Widget", Price: decimal.NewFromFloat(10.00), Quantity: 7},
		{ProductID: "P9", Name: "Gizmo", Price: decimal.NewFromFloat(3.25), Quantity: 2},
	}}
	svc, inv := newTestService(t, st)

	require.NoError(t, svc.LoadInventory(context.Background()))

	p1, _ := inv.Get("P1")
	assert.Equal(t, 12, p1.OnHand, "loading merges by summing stock")
	p9, ok := inv.Get("P9")
	require.True(t, ok)
	assert.Equal(t, 2, p9.OnHand)
}

func TestLoadInventoryWrapsError(t *testing.T) {
	st := &stubStore{loadErr: errors.New("corrupt file")}
	svc, _ := newTestService(t, st)

	err := svc.LoadInventory(context.Background())

	var pErr *PersistenceError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "load", pErr.Op)
}

func TestAddProductValidation(t *testing.T) {
	svc, _ := newTestService(t, &stubStore{})
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, model.Product{Name: "NoID", Price: decimal.NewFromInt(1), OnHand: 1})
	assert.Error(t, err)

	_, err = svc.AddProduct(ctx, model.Product{ID: "P2", Name: "Bad", Price: decimal.NewFromInt(-1), OnHand: 1})
	assert.Error(t, err)

	_, err = svc.AddProduct(ctx, model.Product{ID: "P2", Name: "Bad", Price: decimal.NewFromInt(1), OnHand: -1})
	require.ErrorIs(t, err, store.ErrInvalidQuantity)
}
