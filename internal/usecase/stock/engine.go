package stock

import (
	"context"
	"log/slog"

	"petcare-backend/internal/infra"
	"petcare-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errs.New("demand quantity must be positive")
	ErrProductNotFound   = errs.New("product not found")
	ErrInsufficientStock = errs.New("insufficient stock")
)

// Demand is one (product, quantity) line of a reservation request.
type Demand struct {
	ProductID uuid.UUID
	Quantity  int
}

// ReleaseResult reports the best-effort restock outcome: how many units were
// credited back and which products could not be located.
type ReleaseResult struct {
	Restocked       int
	MissingProducts []uuid.UUID
}

// ReservationFailure carries the product that made a reservation abort, so
// callers can tell the user which line failed.
type ReservationFailure struct {
	ProductID uuid.UUID
	Err       error
}

func (f *ReservationFailure) Error() string {
	if f.Err == nil {
		return "reservation failed for product " + f.ProductID.String()
	}
	return f.Err.Error()
}

func (f *ReservationFailure) Unwrap() error { return f.Err }

// ProductStore is the conditional-update contract over the inventory
// counters. TryDecrementStock must be atomic at the single-row level
// (decrement iff current stock >= qty) and distinguish a missing product
// from insufficient stock via repository error kinds.
type ProductStore interface {
	TryDecrementStock(ctx context.Context, productID uuid.UUID, quantity int) error
	IncrementStock(ctx context.Context, productID uuid.UUID, quantity int) error
}

// Engine performs multi-item, all-or-nothing stock adjustment with
// compensating rollback on partial failure. There is no cross-product
// atomicity beyond the compensation sequence: this is an application-level
// saga, not a database transaction.
type Engine struct {
	store  ProductStore
	logger *slog.Logger
}

func NewEngine(store ProductStore, logger *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		logger: logger,
	}
}

// Reserve decrements every demand in the order given. On the first failure
// it issues compensating increments for the already-applied demands in
// reverse order and returns a *ReservationFailure wrapping
// ErrProductNotFound or ErrInsufficientStock.
//
// Duplicate product ids are deliberate sequential demands: the second one
// runs against the already-decremented stock value.
func (e *Engine) Reserve(ctx context.Context, demands []Demand) error {
	// Validation happens before any store call so a bad line has no side
	// effects at all.
	for _, d := range demands {
		if d.Quantity <= 0 {
			return &ReservationFailure{ProductID: d.ProductID, Err: ErrInvalidQuantity}
		}
	}

	applied := make([]Demand, 0, len(demands))
	for _, d := range demands {
		if err := e.store.TryDecrementStock(ctx, d.ProductID, d.Quantity); err != nil {
			e.compensate(ctx, applied)
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return &ReservationFailure{ProductID: d.ProductID, Err: errs.Mark(err, ErrProductNotFound)}
			case infra.IsKind(err, infra.KindInsufficientStock):
				return &ReservationFailure{ProductID: d.ProductID, Err: errs.Mark(err, ErrInsufficientStock)}
			default:
				return &ReservationFailure{ProductID: d.ProductID, Err: err}
			}
		}
		applied = append(applied, d)
	}

	return nil
}

// compensate rolls back applied decrements in reverse order. Each increment
// is best-effort: a failure here is a stock inconsistency that needs manual
// reconciliation, but it must never mask the original reservation error.
func (e *Engine) compensate(ctx context.Context, applied []Demand) {
	for i := len(applied) - 1; i >= 0; i-- {
		d := applied[i]
		if err := e.store.IncrementStock(ctx, d.ProductID, d.Quantity); err != nil {
			e.logger.Error("CRITICAL: stock compensation failed, manual reconciliation required",
				"product_id", d.ProductID,
				"quantity", d.Quantity,
				"error", err.Error())
		}
	}
}

// Release credits stock back for the given demands, best-effort per item.
// Used by the order cancellation paths; per-item failures never abort the
// cancellation, they are reported in the result instead.
func (e *Engine) Release(ctx context.Context, demands []Demand) ReleaseResult {
	result := ReleaseResult{}
	for _, d := range demands {
		if d.Quantity <= 0 {
			continue
		}
		if err := e.store.IncrementStock(ctx, d.ProductID, d.Quantity); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				result.MissingProducts = append(result.MissingProducts, d.ProductID)
				continue
			}
			e.logger.Error("CRITICAL: restock failed, manual reconciliation required",
				"product_id", d.ProductID,
				"quantity", d.Quantity,
				"error", err.Error())
			continue
		}
		result.Restocked += d.Quantity
	}
	return result
}
