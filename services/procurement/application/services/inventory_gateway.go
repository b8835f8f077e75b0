package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stageops/services/procurement/domain/models"
	"github.com/ghuser/stageops/services/procurement/domain/repositories"
)

// CreateOrderCommand is the strongly-typed input for order creation. The HTTP
// boundary parses and validates raw input into this before the domain ever
// sees it.
type CreateOrderCommand struct {
	ItemID     uuid.UUID
	SupplierID uuid.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
}

// SubmitPaymentCommand carries the inventory department's payment request.
// A zero Amount requests the order's full total cost.
type SubmitPaymentCommand struct {
	OrderID uuid.UUID
	Amount  decimal.Decimal
	Method  models.PaymentMethod
	Notes   string
}

// InventoryGateway exposes the transitions the inventory department may
// invoke: creating orders, confirming receipt, and submitting payments.
type InventoryGateway struct {
	repo      repositories.OrderRepository
	items     ItemDirectory
	suppliers SupplierDirectory
}

// NewInventoryGateway wires the gateway with its repository and the
// directories used to validate and snapshot order references.
func NewInventoryGateway(repo repositories.OrderRepository, items ItemDirectory, suppliers SupplierDirectory) *InventoryGateway {
	return &InventoryGateway{repo: repo, items: items, suppliers: suppliers}
}

// CreateOrder validates the referenced item and supplier, snapshots their
// names, and persists a new Pending order.
func (g *InventoryGateway) CreateOrder(ctx context.Context, actor models.Actor, cmd CreateOrderCommand) (*models.Order, error) {
	if err := requireRole(actor, models.RoleInventory); err != nil {
		return nil, err
	}

	item, err := g.items.Lookup(ctx, cmd.ItemID)
	if err != nil {
		return nil, fmt.Errorf("resolve item: %w", err)
	}
	supplier, err := g.suppliers.Lookup(ctx, cmd.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("resolve supplier: %w", err)
	}

	order, err := models.NewOrder(item, supplier, cmd.Quantity, cmd.UnitPrice)
	if err != nil {
		return nil, err
	}
	if err := g.repo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}
	return order, nil
}

// MarkReceived confirms physical receipt of a delivered order. The stock
// ledger is credited with the ordered quantity in the same transaction as
// the status write; a duplicate call is a no-op and credits nothing.
func (g *InventoryGateway) MarkReceived(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.Order, error) {
	if err := requireRole(actor, models.RoleInventory); err != nil {
		return nil, err
	}
	return mutate(ctx, g.repo, orderID,
		func(o *models.Order) (bool, error) { return o.MarkReceived(actor) },
		g.repo.UpdateReceived,
	)
}

// SubmitPayment opens the payment sub-workflow on a received order.
func (g *InventoryGateway) SubmitPayment(ctx context.Context, actor models.Actor, cmd SubmitPaymentCommand) (*models.Order, error) {
	if err := requireRole(actor, models.RoleInventory); err != nil {
		return nil, err
	}
	return mutate(ctx, g.repo, cmd.OrderID,
		func(o *models.Order) (bool, error) {
			return o.SubmitPayment(actor, cmd.Amount, cmd.Method, cmd.Notes)
		},
		g.repo.Update,
	)
}
