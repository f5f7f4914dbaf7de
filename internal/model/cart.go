package model

import "github.com/shopspring/decimal"

// CartLine is one reserved position in the shopping cart. Name and UnitPrice
// are captured when the line is added so the eventual receipt shows what the
// customer saw at the register; stock itself never lives on the line.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns UnitPrice * Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
