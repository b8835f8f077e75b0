// Package services contains the role gateways for the procurement context.
// Each gateway exposes only the transitions its role may invoke; every call
// takes the acting credential explicitly so the core stays testable without
// any session or storage layer.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	procdomain "github.com/ghuser/stageops/services/procurement/domain"
	"github.com/ghuser/stageops/services/procurement/domain/models"
	"github.com/ghuser/stageops/services/procurement/domain/repositories"
)

// maxCASRetries bounds how often a gateway re-applies a transition after an
// optimistic version conflict. The re-applied attempt runs against the fresh
// state, so a racing loser ends up with the domain guard failure instead of
// silently overwriting the winner.
const maxCASRetries = 3

// ItemDirectory resolves item snapshots from the inventory context.
type ItemDirectory interface {
	Lookup(ctx context.Context, id uuid.UUID) (models.ItemRef, error)
}

// SupplierDirectory resolves supplier snapshots from the supplier context.
type SupplierDirectory interface {
	Lookup(ctx context.Context, id uuid.UUID) (models.SupplierRef, error)
}

// saveFunc persists a transitioned order; Update for plain transitions,
// UpdateReceived for the stock-crediting one.
type saveFunc func(ctx context.Context, order *models.Order) error

// mutate is the single write path all gateways share: load the order, apply
// the transition, persist with an optimistic version check, and retry from a
// fresh read on conflict. A no-op retry (changed=false) skips the save
// entirely so attribution stamps and side effects are never duplicated.
func mutate(
	ctx context.Context,
	repo repositories.OrderRepository,
	orderID uuid.UUID,
	apply func(*models.Order) (bool, error),
	save saveFunc,
) (*models.Order, error) {
	for attempt := 0; ; attempt++ {
		order, err := repo.GetByID(ctx, orderID)
		if err != nil {
			return nil, err
		}

		changed, err := apply(order)
		if err != nil {
			return nil, err
		}
		if !changed {
			return order, nil
		}

		err = save(ctx, order)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, procdomain.ErrVersionConflict) || attempt >= maxCASRetries {
			return nil, err
		}
	}
}

// requireRole fails with ErrPermissionDenied when the actor's role does not
// match the gateway being invoked.
func requireRole(actor models.Actor, role models.Role) error {
	if actor.Role != role {
		return fmt.Errorf("%w: %s credential required", procdomain.ErrPermissionDenied, role)
	}
	return nil
}

// requireSupplierBinding fails with ErrPermissionDenied when a supplier-role
// actor is not bound to the order's supplier.
func requireSupplierBinding(actor models.Actor, order *models.Order) error {
	if !actor.BoundTo(order.Supplier.ID) {
		return fmt.Errorf("%w: actor is not bound to supplier %s", procdomain.ErrPermissionDenied, order.Supplier.ID)
	}
	return nil
}
