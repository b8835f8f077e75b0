package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stageops/services/procurement/domain/models"
	"github.com/ghuser/stageops/services/procurement/domain/repositories"
)

// ProcessPaymentCommand carries the final settlement details recorded by the
// finance department.
type ProcessPaymentCommand struct {
	OrderID        uuid.UUID
	AmountPaid     decimal.Decimal
	Method         models.PaymentMethod
	TransactionRef string
	Notes          string
}

// FinanceGateway exposes the payment decisions reserved for the finance
// department: approve, reject, process, and the mark-as-paid shortcut.
type FinanceGateway struct {
	repo repositories.OrderRepository
}

// NewFinanceGateway returns a FinanceGateway backed by the given repository.
func NewFinanceGateway(repo repositories.OrderRepository) *FinanceGateway {
	return &FinanceGateway{repo: repo}
}

// ApprovePayment approves a submitted payment.
func (g *FinanceGateway) ApprovePayment(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.Order, error) {
	if err := requireRole(actor, models.RoleFinance); err != nil {
		return nil, err
	}
	return mutate(ctx, g.repo, orderID,
		func(o *models.Order) (bool, error) { return o.ApprovePayment(actor) },
		g.repo.Update,
	)
}

// RejectPayment rejects a submitted payment with a reason. The rejection is
// soft-terminal; inventory may resubmit.
func (g *FinanceGateway) RejectPayment(ctx context.Context, actor models.Actor, orderID uuid.UUID, reason string) (*models.Order, error) {
	if err := requireRole(actor, models.RoleFinance); err != nil {
		return nil, err
	}
	return mutate(ctx, g.repo, orderID,
		func(o *models.Order) (bool, error) { return o.RejectPayment(actor, reason) },
		g.repo.Update,
	)
}

// ProcessPayment settles an approved payment with final method, amount, and
// transaction reference. The order reaches Paid in the same write.
func (g *FinanceGateway) ProcessPayment(ctx context.Context, actor models.Actor, cmd ProcessPaymentCommand) (*models.Order, error) {
	if err := requireRole(actor, models.RoleFinance); err != nil {
		return nil, err
	}
	return mutate(ctx, g.repo, cmd.OrderID,
		func(o *models.Order) (bool, error) {
			return o.ProcessPayment(actor, cmd.AmountPaid, cmd.Method, cmd.TransactionRef, cmd.Notes)
		},
		g.repo.Update,
	)
}

// MarkAsPaid settles an approved payment reusing the amount, method, and
// transaction reference already on the record.
func (g *FinanceGateway) MarkAsPaid(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.Order, error) {
	if err := requireRole(actor, models.RoleFinance); err != nil {
		return nil, err
	}
	return mutate(ctx, g.repo, orderID,
		func(o *models.Order) (bool, error) { return o.MarkPaymentPaid(actor) },
		g.repo.Update,
	)
}
