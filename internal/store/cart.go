package store

import (
	"fmt"
	"sync"

	"github.com/mdSHash/SleekSell/internal/model"

	"github.com/shopspring/decimal"
)

// Cart is the in-progress purchase: an ordered sequence of reserved lines.
// Line order is insertion order and becomes the receipt line order. The cart
// trusts its caller (the checkout engine) to have reserved stock before a
// line is added.
type Cart struct {
	mu    sync.Mutex
	lines []model.CartLine
}

func NewCart() *Cart { return &Cart{} }

// Add appends a line to the cart.
func (c *Cart) Add(line model.CartLine) error {
	if line.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, line)
	return nil
}

// Remove deletes the first line whose product ID matches and returns it,
// so the caller can release the reservation it carried.
func (c *Cart) Remove(productID string) (model.CartLine, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, l := range c.lines {
		if l.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return l, nil
		}
	}
	return model.CartLine{}, fmt.Errorf("cart line %q: %w", productID, ErrNotFound)
}

// Total sums UnitPrice * Quantity over all lines. Zero for an empty cart.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines returns a copy of the current line sequence.
func (c *Cart) Lines() []model.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.CartLine(nil), c.lines...)
}

// Clear empties the cart and returns the lines it held.
func (c *Cart) Clear() []model.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	cleared := c.lines
	c.lines = nil
	return cleared
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}
