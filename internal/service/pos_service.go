package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mdSHash/SleekSell/internal/model"
	"github.com/mdSHash/SleekSell/internal/persist"
	"github.com/mdSHash/SleekSell/internal/store"
	"github.com/mdSHash/SleekSell/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ErrEmptyCart is returned by Checkout when there is nothing to sell.
var ErrEmptyCart = errors.New("shopping cart is empty")

// PersistenceError reports a failed load/save of the inventory snapshot.
// When returned by Checkout the transaction itself is already committed in
// memory; the caller may retry the save via SaveInventory.
type PersistenceError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("inventory %s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// POSService is the register facade: every operation a front end may invoke
// against the transactional core. Business failures come back as typed
// errors (store.ErrNotFound, store.ErrInsufficientStock, ErrEmptyCart,
// *PersistenceError), never as panics, and a rejected operation leaves all
// state unchanged.
type POSService interface {
	AddToCart(ctx context.Context, productID string, qty int) (model.CartLine, error)
	RemoveFromCart(ctx context.Context, productID string) (model.CartLine, error)
	AbandonCart(ctx context.Context) ([]model.CartLine, error)
	CartContents(ctx context.Context) ([]model.CartLine, decimal.Decimal)
	Checkout(ctx context.Context, customerEmail string) (*model.Transaction, error)

	ListInventory(ctx context.Context) []model.Product
	AddProduct(ctx context.Context, p model.Product) (model.Product, error)
	AdjustStock(ctx context.Context, productID string, delta int) (model.Product, error)

	ListTransactions(ctx context.Context) []model.Transaction
	LastTransaction(ctx context.Context) (model.Transaction, bool)

	LoadInventory(ctx context.Context) error
	SaveInventory(ctx context.Context) error
}

type posService struct {
	// mu serializes the reserve/release/commit protocol across cart and
	// inventory so the two can never diverge under concurrent requests.
	mu         sync.Mutex
	inventory  *store.Inventory
	cart       *store.Cart
	ledger     *store.TransactionLog
	persistSt  persist.Store
	dispatcher *worker.Dispatcher // nil disables async receipts
}

func NewPOSService(
	inventory *store.Inventory,
	cart *store.Cart,
	ledger *store.TransactionLog,
	persistStore persist.Store,
	dispatcher *worker.Dispatcher,
) POSService {
	return &posService{
		inventory:  inventory,
		cart:       cart,
		ledger:     ledger,
		persistSt:  persistStore,
		dispatcher: dispatcher,
	}
}

// AddToCart reserves qty units of the product and appends a cart line.
// Reservation and line append happen under one lock: both or neither.
func (s *posService) AddToCart(_ context.Context, productID string, qty int) (model.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inventory.Reserve(productID, qty); err != nil {
		return model.CartLine{}, err
	}

	p, _ := s.inventory.Get(productID)
	line := model.CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  qty,
	}
	if err := s.cart.Add(line); err != nil {
		// Reserve validated qty > 0 already; keep the stores reconciled anyway.
		_ = s.inventory.Release(productID, qty)
		return model.CartLine{}, err
	}

	log.Info().Str("product_id", productID).Int("qty", qty).
		Int("available", p.Available()).Msg("cart: line added")
	return line, nil
}

// RemoveFromCart removes the first matching line and releases its full
// reserved quantity back to the inventory. There is no partial removal.
func (s *posService) RemoveFromCart(_ context.Context, productID string) (model.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := s.cart.Remove(productID)
	if err != nil {
		return model.CartLine{}, err
	}
	if err := s.inventory.Release(line.ProductID, line.Quantity); err != nil {
		return model.CartLine{}, err
	}

	log.Info().Str("product_id", productID).Int("qty", line.Quantity).Msg("cart: line removed, reservation released")
	return line, nil
}

// AbandonCart clears the cart and releases every reservation it held.
// Used when a customer walks away; nothing is persisted or recorded.
func (s *posService) AbandonCart(_ context.Context) ([]model.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.Clear()
	for _, l := range lines {
		if err := s.inventory.Release(l.ProductID, l.Quantity); err != nil {
			return lines, err
		}
	}
	if len(lines) > 0 {
		log.Info().Int("lines", len(lines)).Msg("cart: abandoned, reservations released")
	}
	return lines, nil
}

// CartContents returns a copy of the current lines and the running total.
func (s *posService) CartContents(_ context.Context) ([]model.CartLine, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines(), s.cart.Total()
}

// Checkout converts the cart into a permanent transaction: commit the
// reservations, append to the log, clear the cart, then persist the
// inventory snapshot. The in-memory commit is one atomic unit under the
// facade lock; persistence happens after it, so a save failure returns the
// committed transaction together with a retryable *PersistenceError.
func (s *posService) Checkout(ctx context.Context, customerEmail string) (*model.Transaction, error) {
	s.mu.Lock()
	if s.cart.Empty() {
		s.mu.Unlock()
		return nil, ErrEmptyCart
	}

	lines := s.cart.Lines()
	total := s.cart.Total()
	if err := s.inventory.CommitAll(lines); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	txn := s.ledger.Append(lines, total, time.Now())
	s.cart.Clear()
	snapshot := s.inventory.Snapshot()
	s.mu.Unlock()

	log.Info().Int("transaction_id", txn.ID).Str("total", total.StringFixed(2)).
		Int("lines", len(lines)).Msg("checkout committed")

	// Receipt delivery is best-effort and must never fail the sale.
	if s.dispatcher != nil {
		payload := worker.ReceiptJobPayload{Transaction: txn, CustomerEmail: customerEmail}
		if err := s.dispatcher.EnqueueReceipt(ctx, payload); err != nil {
			log.Warn().Err(err).Int("transaction_id", txn.ID).Msg("failed to enqueue receipt job")
		}
	}

	if err := s.persistSt.Save(ctx, toRecords(snapshot)); err != nil {
		log.Error().Err(err).Int("transaction_id", txn.ID).Msg("inventory save failed after checkout")
		return &txn, &PersistenceError{Op: "save", Err: err}
	}
	return &txn, nil
}

// ListInventory returns the sorted catalog snapshot.
func (s *posService) ListInventory(_ context.Context) []model.Product {
	return s.inventory.Snapshot()
}

// AddProduct inserts or merges a catalog entry.
func (s *posService) AddProduct(_ context.Context, p model.Product) (model.Product, error) {
	if p.ID == "" || p.Name == "" {
		return model.Product{}, errors.New("product id and name are required")
	}
	if p.Price.IsNegative() {
		return model.Product{}, errors.New("price must not be negative")
	}
	if p.OnHand < 0 {
		return model.Product{}, store.ErrInvalidQuantity
	}
	return s.inventory.AddOrMerge(p), nil
}

// AdjustStock applies a manual stock correction.
func (s *posService) AdjustStock(_ context.Context, productID string, delta int) (model.Product, error) {
	return s.inventory.Adjust(productID, delta)
}

func (s *posService) ListTransactions(_ context.Context) []model.Transaction {
	return s.ledger.All()
}

func (s *posService) LastTransaction(_ context.Context) (model.Transaction, bool) {
	return s.ledger.Last()
}

// LoadInventory merges the persisted snapshot into the catalog. Called once
// at startup; calling it again merges by summing stock, matching AddOrMerge.
func (s *posService) LoadInventory(ctx context.Context) error {
	records, err := s.persistSt.Load(ctx)
	if err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}
	for _, r := range records {
		s.inventory.AddOrMerge(model.Product{
			ID:     r.ProductID,
			Name:   r.Name,
			Price:  r.Price,
			OnHand: r.Quantity,
		})
	}
	log.Info().Int("products", len(records)).Msg("inventory loaded")
	return nil
}

// SaveInventory persists the current snapshot. Exposed so a failed
// post-checkout save can be retried by the caller.
func (s *posService) SaveInventory(ctx context.Context) error {
	if err := s.persistSt.Save(ctx, toRecords(s.inventory.Snapshot())); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}
	return nil
}

func toRecords(products []model.Product) []persist.Record {
	records := make([]persist.Record, len(products))
	for i, p := range products {
		records[i] = persist.Record{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  p.OnHand,
		}
	}
	return records
}
