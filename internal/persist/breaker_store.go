package persist

import (
	"context"

	"github.com/mdSHash/SleekSell/internal/infra"
)

// BreakerStore wraps a Store with a circuit breaker so a dead backend
// fast-fails instead of stalling every checkout on a hanging connection.
// Checkout already tolerates save failures (the transaction stays committed
// in memory and the caller may retry), so fast-failing is safe.
type BreakerStore struct {
	inner Store
	cb    *infra.CircuitBreaker
}

func NewBreakerStore(inner Store, cb *infra.CircuitBreaker) *BreakerStore {
	return &BreakerStore{inner: inner, cb: cb}
}

func (s *BreakerStore) Load(ctx context.Context) ([]Record, error) {
	var records []Record
	err := s.cb.Execute(func() error {
		var innerErr error
		records, innerErr = s.inner.Load(ctx)
		return innerErr
	})
	return records, err
}

func (s *BreakerStore) Save(ctx context.Context, records []Record) error {
	return s.cb.Execute(func() error {
		return s.inner.Save(ctx, records)
	})
}

// Ping bypasses the breaker: health checks are exactly the probe that should
// still reach a recovering backend.
func (s *BreakerStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}

// State exposes the breaker state for the health endpoint.
func (s *BreakerStore) State() infra.CBState {
	return s.cb.State()
}
