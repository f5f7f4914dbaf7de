// Package persist implements the inventory load/save contract. The core
// treats these operations as opaque: it hands over a snapshot of records and
// gets one back, and the backing format (JSON file, postgres table) is this
// package's concern alone.
package persist

import (
	"context"

	"github.com/shopspring/decimal"
)

// Record is the persisted form of one catalog entry. The field names match
// the historical inventory.json layout, so existing data files load as-is.
// Quantity is the on-hand count; reservations are never persisted.
type Record struct {
	ProductID string          `json:"product_id" gorm:"primaryKey;column:product_id"`
	Name      string          `json:"name" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity  int             `json:"quantity" gorm:"not null;default:0"`
}

// Store is the persistence contract consumed by the POS facade.
type Store interface {
	// Load reads the full inventory snapshot. An empty backend yields an
	// empty slice, not an error.
	Load(ctx context.Context) ([]Record, error)

	// Save replaces the persisted snapshot with the given records.
	Save(ctx context.Context, records []Record) error

	// Ping reports whether the backend is reachable (health checks).
	Ping(ctx context.Context) error
}
