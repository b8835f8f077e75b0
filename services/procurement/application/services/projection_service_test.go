package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	procdomain "github.com/ghuser/stageops/services/procurement/domain"
	"github.com/ghuser/stageops/services/procurement/domain/models"
	"github.com/ghuser/stageops/services/procurement/domain/repositories"
)

func TestProjectionService_GetOrder_SupplierScope(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	proj := NewProjectionService(f.repo)
	order := f.createOrder(t)

	t.Run("own supplier reads its order", func(t *testing.T) {
		got, err := proj.GetOrder(ctx, f.supplierActor, order.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != order.ID {
			t.Fatalf("got order %s, want %s", got.ID, order.ID)
		}
	})

	t.Run("foreign supplier is denied", func(t *testing.T) {
		foreign := models.Actor{ID: uuid.New(), Name: "Njeri", Role: models.RoleSupplier, SupplierID: uuid.New()}
		_, err := proj.GetOrder(ctx, foreign, order.ID)
		if !errors.Is(err, procdomain.ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("finance reads any order", func(t *testing.T) {
		if _, err := proj.GetOrder(ctx, f.financeActor, order.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectionService_Search_SupplierAutoScoped(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	proj := NewProjectionService(f.repo)
	f.createOrder(t)

	// An order for a different supplier, inserted directly.
	other, err := models.NewOrder(
		models.ItemRef{ID: uuid.New(), Name: "Rope"},
		models.SupplierRef{ID: uuid.New(), Name: "Rigging Co"},
		2, decimal.NewFromInt(100),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.repo.Save(ctx, other); err != nil {
		t.Fatal(err)
	}

	// Supplier asking for the other supplier's orders still only sees its own.
	orders, total, err := proj.Search(ctx, f.supplierActor, repositories.SearchQuery{SupplierID: other.Supplier.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected 1 order, got %d", total)
	}
	if orders[0].Supplier.ID != f.supplierRef.ID {
		t.Fatal("supplier search leaked a foreign order")
	}

	// Finance sees everything.
	_, total, err = proj.Search(ctx, f.financeActor, repositories.SearchQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 orders, got %d", total)
	}
}

func TestProjectionService_Dashboard(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	proj := NewProjectionService(f.repo)

	f.createOrder(t)
	order := f.receivedOrder(t)
	if _, err := f.inventory.SubmitPayment(ctx, f.inventoryActor, SubmitPaymentCommand{
		OrderID: order.ID, Method: models.MethodMPesa,
	}); err != nil {
		t.Fatal(err)
	}

	dash, err := proj.Dashboard(ctx, f.financeActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dash.Role != models.RoleFinance {
		t.Fatalf("expected finance dashboard, got %s", dash.Role)
	}
	if dash.Counts.Pending != 1 {
		t.Fatalf("expected 1 pending, got %d", dash.Counts.Pending)
	}
	if dash.Counts.Received != 1 {
		t.Fatalf("expected 1 received, got %d", dash.Counts.Received)
	}
	if dash.Counts.PaymentsSubmitted != 1 {
		t.Fatalf("expected 1 submitted payment, got %d", dash.Counts.PaymentsSubmitted)
	}

	// Supplier dashboard counts only its own orders.
	supDash, err := proj.Dashboard(ctx, f.supplierActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if supDash.Counts.Pending+supDash.Counts.Received != 2 {
		t.Fatalf("expected supplier to count both of its orders, got %+v", supDash.Counts)
	}
}
