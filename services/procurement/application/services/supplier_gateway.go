package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/services/procurement/domain/models"
	"github.com/ghuser/stageops/services/procurement/domain/repositories"
)

// SupplierGateway exposes the transitions a supplier may invoke on orders
// bound to it: the approve/reject decision, delivery, and payment-receipt
// confirmation.
type SupplierGateway struct {
	repo repositories.OrderRepository
}

// NewSupplierGateway returns a SupplierGateway backed by the given repository.
func NewSupplierGateway(repo repositories.OrderRepository) *SupplierGateway {
	return &SupplierGateway{repo: repo}
}

// ApproveOrder accepts a pending order.
func (g *SupplierGateway) ApproveOrder(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.Order, error) {
	if err := requireRole(actor, models.RoleSupplier); err != nil {
		return nil, err
	}
	return mutate(ctx, g.repo, orderID,
		func(o *models.Order) (bool, error) {
			if err := requireSupplierBinding(actor, o); err != nil {
				return false, err
			}
			return o.Approve(actor)
		},
		g.repo.Update,
	)
}

// RejectOrder declines a pending order with an optional reason. Terminal for
// the fulfillment dimension.
func (g *SupplierGateway) RejectOrder(ctx context.Context, actor models.Actor, orderID uuid.UUID, reason string) (*models.Order, error) {
	if err := requireRole(actor, models.RoleSupplier); err != nil {
		return nil, err
	}
	return mutate(ctx, g.repo, orderID,
		func(o *models.Order) (bool, error) {
			if err := requireSupplierBinding(actor, o); err != nil {
				return false, err
			}
			return o.Reject(actor, reason)
		},
		g.repo.Update,
	)
}

// MarkDelivered records dispatch of an approved order; the server assigns
// the tracking number and delivery date.
func (g *SupplierGateway) MarkDelivered(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.Order, error) {
	if err := requireRole(actor, models.RoleSupplier); err != nil {
		return nil, err
	}
	return mutate(ctx, g.repo, orderID,
		func(o *models.Order) (bool, error) {
			if err := requireSupplierBinding(actor, o); err != nil {
				return false, err
			}
			return o.MarkDelivered(actor)
		},
		g.repo.Update,
	)
}

// ConfirmPaymentReceipt records the supplier's acknowledgment of a settled
// payment, with the required transaction proof.
func (g *SupplierGateway) ConfirmPaymentReceipt(ctx context.Context, actor models.Actor, orderID uuid.UUID, transactionProof string) (*models.Order, error) {
	if err := requireRole(actor, models.RoleSupplier); err != nil {
		return nil, err
	}
	return mutate(ctx, g.repo, orderID,
		func(o *models.Order) (bool, error) {
			if err := requireSupplierBinding(actor, o); err != nil {
				return false, err
			}
			return o.ConfirmPaymentReceipt(actor, transactionProof)
		},
		g.repo.Update,
	)
}
