package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/services/supplier/domain/models"
)

// SupplierRepository is the persistence interface for the Supplier aggregate.
type SupplierRepository interface {
	Save(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	List(ctx context.Context) ([]*models.Supplier, error)
}
