package store

import (
	"testing"

	"github.com/mdSHash/SleekSell/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id string, price float64, qty int) model.CartLine {
	return model.CartLine{ProductID: id, Name: id, UnitPrice: decimal.NewFromFloat(price), Quantity: qty}
}

func TestCartAddAndTotal(t *testing.T) {
	c := NewCart()

	require.NoError(t, c.Add(line("P1", 10.00, 3)))
	require.NoError(t, c.Add(line("P2", 4.50, 2)))

	assert.True(t, c.Total().Equal(decimal.NewFromFloat(39.00)), "got %s", c.Total())
	assert.False(t, c.Empty())
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	c := NewCart()

	require.ErrorIs(t, c.Add(line("P1", 10.00, 0)), ErrInvalidQuantity)
	assert.True(t, c.Empty())
}

func TestCartPreservesInsertionOrder(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.Add(line("P2", 1, 1)))
	require.NoError(t, c.Add(line("P1", 1, 1)))
	require.NoError(t, c.Add(line("P3", 1, 1)))

	lines := c.Lines()

	require.Len(t, lines, 3)
	assert.Equal(t, "P2", lines[0].ProductID)
	assert.Equal(t, "P1", lines[1].ProductID)
	assert.Equal(t, "P3", lines[2].ProductID)
}

func TestCartRemoveFirstMatchOnly(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.Add(line("P1", 10.00, 2)))
	require.NoError(t, c.Add(line("P1", 10.00, 5)))

	removed, err := c.Remove("P1")

	require.NoError(t, err)
	assert.Equal(t, 2, removed.Quantity, "must remove the earliest matching line")
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestCartRemoveUnknown(t *testing.T) {
	c := NewCart()

	_, err := c.Remove("ghost")

	require.ErrorIs(t, err, ErrNotFound)
}

func TestCartClearReturnsLines(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.Add(line("P1", 10.00, 1)))
	require.NoError(t, c.Add(line("P2", 2.00, 4)))

	cleared := c.Clear()

	assert.Len(t, cleared, 2)
	assert.True(t, c.Empty())
	assert.True(t, c.Total().IsZero())
}

func TestCartLinesIsACopy(t *testing.T) {
	c := NewCart()
	require.NoError(t, c.Add(line("P1", 10.00, 1)))

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}
