package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/services/procurement/domain/models"
)

// SearchQuery filters order lists. Text matches item name, order-id suffix,
// or tracking number; empty fields are ignored.
type SearchQuery struct {
	Text       string
	Status     *models.OrderStatus
	SupplierID uuid.UUID // filter to one supplier's orders when non-zero
	Limit      int
	Offset     int
}

// StatusCounts is the per-role dashboard projection, recomputed from the
// order store on demand. It is never a write path.
type StatusCounts struct {
	Pending              int
	Approved             int
	Rejected             int
	Delivered            int
	Received             int
	Paid                 int
	PaymentsSubmitted    int
	AwaitingConfirmation int // settled but not yet supplier-confirmed
}

// OrderRepository is the persistence interface for the Order aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Update and UpdateReceived perform an optimistic version check against
// order.Version and return domain.ErrVersionConflict when the stored row has
// moved on. On success the order's Version is incremented in place.
type OrderRepository interface {
	Save(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)

	// Update persists a transitioned order.
	Update(ctx context.Context, order *models.Order) error

	// UpdateReceived persists the Received transition and credits the
	// ordered quantity to the item's stock in the same transaction.
	UpdateReceived(ctx context.Context, order *models.Order) error

	// Search retrieves orders matching q, newest first, plus the total
	// count ignoring pagination.
	Search(ctx context.Context, q SearchQuery) ([]*models.Order, int, error)

	// StatusCounts computes the dashboard projection, optionally scoped to
	// one supplier (uuid.Nil means all suppliers).
	StatusCounts(ctx context.Context, supplierID uuid.UUID) (StatusCounts, error)
}
