package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a finalized purchase. Once appended to the log it is never
// mutated: Lines is a deep copy of the cart at checkout time, Total is
// computed once and frozen, and ID is assigned by the log (1, 2, 3, … with
// no gaps within a process lifetime).
type Transaction struct {
	ID        int             `json:"id"`
	Lines     []CartLine      `json:"lines"`
	Total     decimal.Decimal `json:"total"`
	Timestamp time.Time       `json:"timestamp"`
}
