package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/services/procurement/domain/models"
	"github.com/ghuser/stageops/services/procurement/domain/repositories"
)

// Dashboard is the read-side summary a role's landing screen renders.
type Dashboard struct {
	Role   models.Role
	Counts repositories.StatusCounts
}

// ProjectionService serves the read side: single orders, filtered lists, and
// per-role dashboard counts. Everything here is re-derived from the
// authoritative order store on demand; nothing is ever written back.
type ProjectionService struct {
	repo repositories.OrderRepository
}

// NewProjectionService returns a ProjectionService over the given repository.
func NewProjectionService(repo repositories.OrderRepository) *ProjectionService {
	return &ProjectionService{repo: repo}
}

// GetOrder returns one order. Supplier actors may only read orders bound to
// their supplier.
func (s *ProjectionService) GetOrder(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role == models.RoleSupplier {
		if err := requireSupplierBinding(actor, order); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// Search returns orders matching q. Supplier actors are always scoped to
// their own supplier regardless of what the query asks for.
func (s *ProjectionService) Search(ctx context.Context, actor models.Actor, q repositories.SearchQuery) ([]*models.Order, int, error) {
	if actor.Role == models.RoleSupplier {
		q.SupplierID = actor.SupplierID
	}
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 20
	}
	orders, total, err := s.repo.Search(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("search orders: %w", err)
	}
	return orders, total, nil
}

// Dashboard computes the calling role's counts. Supplier dashboards are
// scoped to the actor's supplier; inventory and finance see all orders.
func (s *ProjectionService) Dashboard(ctx context.Context, actor models.Actor) (*Dashboard, error) {
	scope := uuid.Nil
	if actor.Role == models.RoleSupplier {
		scope = actor.SupplierID
	}
	counts, err := s.repo.StatusCounts(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	return &Dashboard{Role: actor.Role, Counts: counts}, nil
}
