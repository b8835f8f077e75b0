package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/pkg/app"
	invpostgres "github.com/ghuser/stageops/services/inventory/infrastructure/persistence/postgres"
	"github.com/ghuser/stageops/services/procurement/domain/models"
	"github.com/ghuser/stageops/services/procurement/infrastructure/persistence/postgres"
	suppostgres "github.com/ghuser/stageops/services/supplier/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires the three role gateways and the read-side projection with their
// infrastructure implementations.
type Services struct {
	Inventory  *InventoryGateway
	Supplier   *SupplierGateway
	Finance    *FinanceGateway
	Projection *ProjectionService
}

// New wires all procurement application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewOrderRepository(a.Db, a.EventBus)
	items := &itemDirectory{repo: invpostgres.NewItemRepository(a.Db, a.EventBus)}
	suppliers := &supplierDirectory{repo: suppostgres.NewSupplierRepository(a.Db, a.EventBus)}
	return &Services{
		Inventory:  NewInventoryGateway(repo, items, suppliers),
		Supplier:   NewSupplierGateway(repo),
		Finance:    NewFinanceGateway(repo),
		Projection: NewProjectionService(repo),
	}
}

// itemDirectory adapts the inventory repository to the ItemDirectory port.
type itemDirectory struct {
	repo *invpostgres.ItemRepository
}

func (d *itemDirectory) Lookup(ctx context.Context, id uuid.UUID) (models.ItemRef, error) {
	item, err := d.repo.GetByID(ctx, id)
	if err != nil {
		return models.ItemRef{}, err
	}
	return models.ItemRef{ID: item.ID, Name: item.Name.String()}, nil
}

// supplierDirectory adapts the supplier repository to the SupplierDirectory port.
type supplierDirectory struct {
	repo *suppostgres.SupplierRepository
}

func (d *supplierDirectory) Lookup(ctx context.Context, id uuid.UUID) (models.SupplierRef, error) {
	supplier, err := d.repo.GetByID(ctx, id)
	if err != nil {
		return models.SupplierRef{}, err
	}
	return models.SupplierRef{ID: supplier.ID, Name: supplier.Name}, nil
}
