package store

import (
	"sync"
	"time"

	"github.com/mdSHash/SleekSell/internal/model"

	"github.com/shopspring/decimal"
)

// TransactionLog is the append-only record of completed purchases and the
// source of truth for receipt IDs. Entries are never mutated or removed
// after Append.
type TransactionLog struct {
	mu           sync.RWMutex
	transactions []model.Transaction
}

func NewTransactionLog() *TransactionLog { return &TransactionLog{} }

// Append finalizes a purchase. The line slice is deep-copied so later cart
// mutation cannot reach the record, and the ID is len+1 — strictly
// increasing and gap-free for the life of the process.
func (l *TransactionLog) Append(lines []model.CartLine, total decimal.Decimal, ts time.Time) model.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	txn := model.Transaction{
		ID:        len(l.transactions) + 1,
		Lines:     append([]model.CartLine(nil), lines...),
		Total:     total,
		Timestamp: ts,
	}
	l.transactions = append(l.transactions, txn)
	return txn
}

// Last returns the most recent transaction, if any.
func (l *TransactionLog) Last() (model.Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.transactions) == 0 {
		return model.Transaction{}, false
	}
	return copyTxn(l.transactions[len(l.transactions)-1]), true
}

// All returns a copy of every transaction in append order.
func (l *TransactionLog) All() []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Transaction, len(l.transactions))
	for i, t := range l.transactions {
		out[i] = copyTxn(t)
	}
	return out
}

// Len returns the number of recorded transactions.
func (l *TransactionLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.transactions)
}

func copyTxn(t model.Transaction) model.Transaction {
	t.Lines = append([]model.CartLine(nil), t.Lines...)
	return t
}
