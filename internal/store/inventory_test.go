package store

import (
	"testing"

	"github.com/mdSHash/SleekSell/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func widget(onHand int) model.Product {
	return model.Product{ID: "P1", Name: "Widget", Price: decimal.NewFromFloat(10.00), OnHand: onHand}
}

func TestAddOrMergeNewProduct(t *testing.T) {
	inv := NewInventory()

	got := inv.AddOrMerge(widget(5))

	assert.Equal(t, "P1", got.ID)
	assert.Equal(t, 5, got.OnHand)
	assert.Equal(t, 0, got.Reserved)
	assert.Equal(t, 1, inv.Len())
}

func TestAddOrMergeSumsStock(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))

	got := inv.AddOrMerge(widget(3))

	assert.Equal(t, 8, got.OnHand)
	assert.Equal(t, 1, inv.Len())
}

func TestAddOrMergeIgnoresIncomingReservations(t *testing.T) {
	inv := NewInventory()
	p := widget(5)
	p.Reserved = 4

	got := inv.AddOrMerge(p)

	assert.Equal(t, 0, got.Reserved)
	assert.Equal(t, 5, got.Available())
}

func TestReserveReducesAvailability(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))

	require.NoError(t, inv.Reserve("P1", 3))

	p, ok := inv.Get("P1")
	require.True(t, ok)
	assert.Equal(t, 5, p.OnHand, "reserving must not deduct on-hand stock")
	assert.Equal(t, 3, p.Reserved)
	assert.Equal(t, 2, p.Available())
}

func TestReserveBeyondAvailableFails(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))
	require.NoError(t, inv.Reserve("P1", 3))

	err := inv.Reserve("P1", 3)

	require.ErrorIs(t, err, ErrInsufficientStock)
	p, _ := inv.Get("P1")
	assert.Equal(t, 3, p.Reserved, "failed reserve must not change state")
}

func TestReserveUnknownProduct(t *testing.T) {
	inv := NewInventory()

	err := inv.Reserve("ghost", 1)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestReserveNonPositiveQuantity(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))

	require.ErrorIs(t, inv.Reserve("P1", 0), ErrInvalidQuantity)
	require.ErrorIs(t, inv.Reserve("P1", -2), ErrInvalidQuantity)
}

func TestReleaseRestoresAvailability(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))
	require.NoError(t, inv.Reserve("P1", 3))

	require.NoError(t, inv.Release("P1", 3))

	p, _ := inv.Get("P1")
	assert.Equal(t, 0, p.Reserved)
	assert.Equal(t, 5, p.Available())
}

func TestReleaseMoreThanReserved(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))
	require.NoError(t, inv.Reserve("P1", 2))

	err := inv.Release("P1", 3)

	require.ErrorIs(t, err, ErrInvalidQuantity)
	p, _ := inv.Get("P1")
	assert.Equal(t, 2, p.Reserved)
}

func TestCommitAllDeductsOnHand(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))
	require.NoError(t, inv.Reserve("P1", 3))

	err := inv.CommitAll([]model.CartLine{
		{ProductID: "P1", Quantity: 3},
	})

	require.NoError(t, err)
	p, _ := inv.Get("P1")
	assert.Equal(t, 2, p.OnHand)
	assert.Equal(t, 0, p.Reserved)
	assert.Equal(t, 2, p.Available())
}

func TestCommitAllSumsLinesPerProduct(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))
	require.NoError(t, inv.Reserve("P1", 2))
	require.NoError(t, inv.Reserve("P1", 2))

	err := inv.CommitAll([]model.CartLine{
		{ProductID: "P1", Quantity: 2},
		{ProductID: "P1", Quantity: 2},
	})

	require.NoError(t, err)
	p, _ := inv.Get("P1")
	assert.Equal(t, 1, p.OnHand)
	assert.Equal(t, 0, p.Reserved)
}

func TestCommitAllIsAllOrNothing(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))
	inv.AddOrMerge(model.Product{ID: "P2", Name: "Gadget", Price: decimal.NewFromInt(4), OnHand: 2})
	require.NoError(t, inv.Reserve("P1", 3))

	// Second line was never reserved, so the whole commit must be rejected.
	err := inv.CommitAll([]model.CartLine{
		{ProductID: "P1", Quantity: 3},
		{ProductID: "P2", Quantity: 1},
	})

	require.ErrorIs(t, err, ErrInvalidQuantity)
	p1, _ := inv.Get("P1")
	assert.Equal(t, 5, p1.OnHand, "rejected commit must leave stock untouched")
	assert.Equal(t, 3, p1.Reserved)
}

func TestAdjustRestock(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))

	p, err := inv.Adjust("P1", 10)

	require.NoError(t, err)
	assert.Equal(t, 15, p.OnHand)
}

func TestAdjustCannotCutIntoReservations(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))
	require.NoError(t, inv.Reserve("P1", 4))

	_, err := inv.Adjust("P1", -2)

	require.ErrorIs(t, err, ErrInsufficientStock)
	p, _ := inv.Get("P1")
	assert.Equal(t, 5, p.OnHand)
}

func TestAdjustUnknownProduct(t *testing.T) {
	inv := NewInventory()

	_, err := inv.Adjust("ghost", 1)

	require.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshotSortedAndStable(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(model.Product{ID: "B", Name: "Beta", Price: decimal.NewFromInt(2), OnHand: 1})
	inv.AddOrMerge(model.Product{ID: "A", Name: "Alpha", Price: decimal.NewFromInt(1), OnHand: 1})
	inv.AddOrMerge(model.Product{ID: "C", Name: "Gamma", Price: decimal.NewFromInt(3), OnHand: 1})

	first := inv.Snapshot()
	second := inv.Snapshot()

	require.Len(t, first, 3)
	assert.Equal(t, "A", first[0].ID)
	assert.Equal(t, "B", first[1].ID)
	assert.Equal(t, "C", first[2].ID)
	assert.Equal(t, first, second, "snapshot must be idempotent without intervening mutation")
}

func TestSnapshotIsACopy(t *testing.T) {
	inv := NewInventory()
	inv.AddOrMerge(widget(5))

	snap := inv.Snapshot()
	snap[0].OnHand = 999

	p, _ := inv.Get("P1")
	assert.Equal(t, 5, p.OnHand)
}
