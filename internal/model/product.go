package model

import "github.com/shopspring/decimal"

// Product is one catalog entry: immutable identity (ID, Name, Price) plus
// mutable stock counters. OnHand is the physically held stock; Reserved is
// the portion of OnHand currently held against open cart lines.
//
// Invariants maintained by store.Inventory: OnHand >= 0 and
// 0 <= Reserved <= OnHand.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	OnHand   int             `json:"on_hand"`
	Reserved int             `json:"reserved"`
}

// Available is the sellable stock: on-hand minus open reservations.
func (p Product) Available() int { return p.OnHand - p.Reserved }
