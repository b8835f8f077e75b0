// Package services contains the supplier registry's application services.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/pkg/app"
	supdomain "github.com/ghuser/stageops/services/supplier/domain"
	"github.com/ghuser/stageops/services/supplier/domain/models"
	"github.com/ghuser/stageops/services/supplier/domain/repositories"
	"github.com/ghuser/stageops/services/supplier/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Supplier *SupplierService
}

// New wires the supplier application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewSupplierRepository(a.Db, a.EventBus)
	return &Services{Supplier: NewSupplierService(repo)}
}

// SupplierService manages the supplier registry.
type SupplierService struct {
	repo repositories.SupplierRepository
}

// NewSupplierService returns a SupplierService over the given repository.
func NewSupplierService(repo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// Create validates and persists a supplier.
func (s *SupplierService) Create(ctx context.Context, name, contact, phone string) (*models.Supplier, error) {
	supplier, err := models.NewSupplier(name, contact, phone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", supdomain.ErrInvalidSupplier, err)
	}
	if err := s.repo.Save(ctx, supplier); err != nil {
		return nil, fmt.Errorf("save supplier: %w", err)
	}
	return supplier, nil
}

// GetByID returns one supplier.
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all registered suppliers.
func (s *SupplierService) List(ctx context.Context) ([]*models.Supplier, error) {
	suppliers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, nil
}
