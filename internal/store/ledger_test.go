package store

import (
	"testing"
	"time"

	"github.com/mdSHash/SleekSell/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerAppendAssignsSequentialIDs(t *testing.T) {
	l := NewTransactionLog()
	lines := []model.CartLine{line("P1", 10.00, 3)}

	first := l.Append(lines, decimal.NewFromInt(30), time.Now())
	second := l.Append(lines, decimal.NewFromInt(30), time.Now())
	third := l.Append(lines, decimal.NewFromInt(30), time.Now())

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)
	assert.Equal(t, 3, l.Len())
}

func TestLedgerLastEmpty(t *testing.T) {
	l := NewTransactionLog()

	_, ok := l.Last()

	assert.False(t, ok)
}

func TestLedgerLastReturnsNewest(t *testing.T) {
	l := NewTransactionLog()
	l.Append([]model.CartLine{line("P1", 1, 1)}, decimal.NewFromInt(1), time.Now())
	l.Append([]model.CartLine{line("P2", 2, 1)}, decimal.NewFromInt(2), time.Now())

	last, ok := l.Last()

	require.True(t, ok)
	assert.Equal(t, 2, last.ID)
	assert.Equal(t, "P2", last.Lines[0].ProductID)
}

func TestLedgerRecordsSurviveCartMutation(t *testing.T) {
	l := NewTransactionLog()
	lines := []model.CartLine{line("P1", 10.00, 3)}

	txn := l.Append(lines, decimal.NewFromInt(30), time.Now())
	lines[0].Quantity = 99

	assert.Equal(t, 3, txn.Lines[0].Quantity)
	stored, _ := l.Last()
	assert.Equal(t, 3, stored.Lines[0].Quantity)
}

func TestLedgerAllReturnsCopies(t *testing.T) {
	l := NewTransactionLog()
	l.Append([]model.CartLine{line("P1", 10.00, 3)}, decimal.NewFromInt(30), time.Now())

	all := l.All()
	all[0].Lines[0].Quantity = 99

	stored, _ := l.Last()
	assert.Equal(t, 3, stored.Lines[0].Quantity)
}

func TestLedgerAllAppendOrder(t *testing.T) {
	l := NewTransactionLog()
	for i := 0; i < 5; i++ {
		l.Append([]model.CartLine{line("P1", 1, 1)}, decimal.NewFromInt(1), time.Now())
	}

	all := l.All()

	require.Len(t, all, 5)
	for i, txn := range all {
		assert.Equal(t, i+1, txn.ID)
	}
}
