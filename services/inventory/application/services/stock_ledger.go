package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/stageops/pkg/cache"
	invdomain "github.com/ghuser/stageops/services/inventory/domain"
	"github.com/ghuser/stageops/services/inventory/domain/repositories"
)

// Adjustment reasons recorded on every ledger mutation.
const (
	ReasonOrderReceived = "order_received"
	ReasonRestock       = "restock"
	ReasonConsumed      = "consumed"
)

// StockLedger is the authoritative write path for item quantities. Mutations
// for the same item serialize on a single atomic row update in the
// repository, so concurrent adjustments can never race a read-modify-write.
type StockLedger struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewStockLedger returns a StockLedger over the given repository and cache.
func NewStockLedger(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *StockLedger {
	return &StockLedger{repo: repo, cache: itemCache}
}

// Increment credits qty units of stock. Unknown items fail with
// ErrItemNotFound; there is no other failure mode.
func (l *StockLedger) Increment(ctx context.Context, itemID uuid.UUID, qty int, reason string) (int, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: increment must be positive", invdomain.ErrInvalidItem)
	}
	return l.adjust(ctx, itemID, qty, reason)
}

// Decrement debits qty units of stock. A debit that would drive the quantity
// negative fails with ErrInsufficientStock and aborts the caller's operation.
func (l *StockLedger) Decrement(ctx context.Context, itemID uuid.UUID, qty int, reason string) (int, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: decrement must be positive", invdomain.ErrInvalidItem)
	}
	return l.adjust(ctx, itemID, -qty, reason)
}

// Restock is the direct restock entry used outside the order flow.
func (l *StockLedger) Restock(ctx context.Context, itemID uuid.UUID, qty int) (int, error) {
	return l.Increment(ctx, itemID, qty, ReasonRestock)
}

func (l *StockLedger) adjust(ctx context.Context, itemID uuid.UUID, delta int, reason string) (int, error) {
	quantity, err := l.repo.AdjustQuantity(ctx, itemID, delta, reason)
	if err != nil {
		return 0, err
	}
	// The cached read model is stale after any mutation; drop it so the
	// next read goes to Postgres.
	if l.cache != nil {
		_ = l.cache.Delete(context.Background(), itemID)
	}
	return quantity, nil
}
