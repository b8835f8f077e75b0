package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/services/inventory/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ItemRepository interface {
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)

	// List retrieves a paginated list of items plus the total count
	// (ignoring pagination).
	List(ctx context.Context, opts QueryOpts) ([]*models.Item, int, error)

	// LowStock retrieves items whose quantity is at or under their reorder
	// threshold.
	LowStock(ctx context.Context) ([]*models.Item, error)

	// AdjustQuantity applies delta to the item's stock level atomically and
	// returns the resulting quantity. A delta that would drive the quantity
	// negative fails with ErrInsufficientStock and changes nothing.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int, reason string) (int, error)

	// Exists reports whether an item with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
