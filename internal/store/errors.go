// Package store holds the in-memory state of the register: the product
// inventory, the active shopping cart, the append-only transaction log and
// the credential store. Each store guards its own state with a mutex; the
// cross-store checkout protocol is serialized by service.POSService.
package store

import "errors"

var (
	// ErrNotFound is returned when a product or cart line does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock is returned when a requested quantity exceeds
	// the available (on-hand minus reserved) stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned for zero or negative quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)
