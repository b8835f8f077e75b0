package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/stageops/services/inventory/domain"
	"github.com/ghuser/stageops/services/inventory/domain/models"
	"github.com/ghuser/stageops/services/inventory/domain/repositories"
)

// memItemRepo is an in-memory ItemRepository with the same atomic adjustment
// semantics as the Postgres implementation.
type memItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*models.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: make(map[uuid.UUID]*models.Item)}
}

func (r *memItemRepo) Save(_ context.Context, item *models.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Name == item.Name {
			return invdomain.ErrItemAlreadyExists
		}
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, invdomain.ErrItemNotFound
	}
	cp := *item
	return &cp, nil
}

func (r *memItemRepo) List(_ context.Context, _ repositories.QueryOpts) ([]*models.Item, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Item, 0, len(r.items))
	for _, item := range r.items {
		cp := *item
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *memItemRepo) LowStock(_ context.Context) ([]*models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Item
	for _, item := range r.items {
		if item.BelowThreshold() {
			cp := *item
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memItemRepo) AdjustQuantity(_ context.Context, id uuid.UUID, delta int, _ string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return 0, invdomain.ErrItemNotFound
	}
	if item.Quantity+delta < 0 {
		return 0, invdomain.ErrInsufficientStock
	}
	item.Quantity += delta
	return item.Quantity, nil
}

func (r *memItemRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.items[id]
	return ok, nil
}

func seedItem(t *testing.T, repo *memItemRepo, quantity int) *models.Item {
	t.Helper()
	item, err := models.NewItem("Gaffer tape", "consumables", quantity, 5, "roll")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(context.Background(), item); err != nil {
		t.Fatal(err)
	}
	return item
}

func TestStockLedger_IncrementAndDecrement(t *testing.T) {
	repo := newMemItemRepo()
	ledger := NewStockLedger(repo, nil)
	ctx := context.Background()
	item := seedItem(t, repo, 10)

	qty, err := ledger.Increment(ctx, item.ID, 5, ReasonOrderReceived)
	if err != nil {
		t.Fatalf("Increment: %v", err)
	}
	if qty != 15 {
		t.Fatalf("expected 15, got %d", qty)
	}

	qty, err = ledger.Decrement(ctx, item.ID, 12, ReasonConsumed)
	if err != nil {
		t.Fatalf("Decrement: %v", err)
	}
	if qty != 3 {
		t.Fatalf("expected 3, got %d", qty)
	}
}

func TestStockLedger_DecrementBelowZero(t *testing.T) {
	repo := newMemItemRepo()
	ledger := NewStockLedger(repo, nil)
	ctx := context.Background()
	item := seedItem(t, repo, 3)

	_, err := ledger.Decrement(ctx, item.ID, 4, ReasonConsumed)
	if !errors.Is(err, invdomain.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	// The aborted debit must change nothing.
	stored, err := repo.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Quantity != 3 {
		t.Fatalf("expected quantity unchanged at 3, got %d", stored.Quantity)
	}
}

func TestStockLedger_InvalidDelta(t *testing.T) {
	repo := newMemItemRepo()
	ledger := NewStockLedger(repo, nil)
	ctx := context.Background()
	item := seedItem(t, repo, 3)

	if _, err := ledger.Increment(ctx, item.ID, 0, ReasonRestock); !errors.Is(err, invdomain.ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
	if _, err := ledger.Decrement(ctx, item.ID, -2, ReasonConsumed); !errors.Is(err, invdomain.ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
}

func TestStockLedger_UnknownItem(t *testing.T) {
	ledger := NewStockLedger(newMemItemRepo(), nil)
	_, err := ledger.Restock(context.Background(), uuid.New(), 5)
	if !errors.Is(err, invdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestStockLedger_ConcurrentAdjustments(t *testing.T) {
	repo := newMemItemRepo()
	ledger := NewStockLedger(repo, nil)
	ctx := context.Background()
	item := seedItem(t, repo, 0)

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.Increment(ctx, item.ID, 1, ReasonRestock); err != nil {
				t.Errorf("Increment: %v", err)
			}
		}()
	}
	wg.Wait()

	stored, err := repo.GetByID(ctx, item.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Quantity != workers {
		t.Fatalf("expected %d, got %d", workers, stored.Quantity)
	}
}

func TestItemService_Create(t *testing.T) {
	repo := newMemItemRepo()
	svc := NewItemService(repo, nil)
	ctx := context.Background()

	t.Run("valid item", func(t *testing.T) {
		item, err := svc.Create(ctx, "Stage paint (black)", "paint", 8, 3, "litre")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == uuid.Nil {
			t.Fatal("expected generated ID")
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := svc.Create(ctx, "Stage paint (black)", "paint", 8, 3, "litre")
		if !errors.Is(err, invdomain.ErrItemAlreadyExists) {
			t.Fatalf("expected ErrItemAlreadyExists, got %v", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		_, err := svc.Create(ctx, " leading space", "paint", 1, 0, "litre")
		if !errors.Is(err, invdomain.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("missing unit", func(t *testing.T) {
		_, err := svc.Create(ctx, "Rope", "rigging", 1, 0, " ")
		if !errors.Is(err, invdomain.ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})
}

func TestItemService_LowStock(t *testing.T) {
	repo := newMemItemRepo()
	svc := NewItemService(repo, nil)
	ledger := NewStockLedger(repo, nil)
	ctx := context.Background()

	healthy, err := svc.Create(ctx, "Rope", "rigging", 20, 5, "metre")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, "Fog fluid", "effects", 2, 5, "litre"); err != nil {
		t.Fatal(err)
	}

	low, err := svc.LowStock(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(low) != 1 {
		t.Fatalf("expected 1 low-stock item, got %d", len(low))
	}
	if low[0].Name != "Fog fluid" {
		t.Fatalf("expected Fog fluid, got %s", low[0].Name)
	}

	// Draining the healthy item to its threshold makes it low stock too.
	if _, err := ledger.Decrement(ctx, healthy.ID, 15, ReasonConsumed); err != nil {
		t.Fatal(err)
	}
	low, err = svc.LowStock(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(low) != 2 {
		t.Fatalf("expected 2 low-stock items, got %d", len(low))
	}
}
