package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewItem(t *testing.T) {
	name := ItemName("Gaffer tape")

	t.Run("returns item with non-zero ID", func(t *testing.T) {
		item, err := NewItem(name, "consumables", 12, 5, "roll")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
	})

	t.Run("sets fields correctly", func(t *testing.T) {
		item, err := NewItem(name, "consumables", 12, 5, "roll")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Name != name {
			t.Fatalf("expected Name %v, got %v", name, item.Name)
		}
		if item.Category != "consumables" {
			t.Fatalf("expected Category %q, got %q", "consumables", item.Category)
		}
		if item.Quantity != 12 {
			t.Fatalf("expected Quantity 12, got %d", item.Quantity)
		}
		if item.MinThreshold != 5 {
			t.Fatalf("expected MinThreshold 5, got %d", item.MinThreshold)
		}
		if item.Unit != "roll" {
			t.Fatalf("expected Unit %q, got %q", "roll", item.Unit)
		}
	})

	t.Run("sets CreatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		item, err := NewItem(name, "", 0, 0, "unit")
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.CreatedAt.IsZero() {
			t.Fatal("expected non-zero CreatedAt")
		}
		if item.CreatedAt.Before(before) || item.CreatedAt.After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", item.CreatedAt, before, after)
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		item1, _ := NewItem(name, "", 0, 0, "unit")
		item2, _ := NewItem(name, "", 0, 0, "unit")
		if item1.ID == item2.ID {
			t.Fatal("expected unique IDs, got identical")
		}
	})
}

func TestItem_BelowThreshold(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		minThreshold int
		want         bool
	}{
		{"above threshold", 10, 5, false},
		{"exactly at threshold", 5, 5, true},
		{"below threshold", 3, 5, true},
		{"zero stock zero threshold", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := &Item{Quantity: tt.quantity, MinThreshold: tt.minThreshold}
			if got := item.BelowThreshold(); got != tt.want {
				t.Fatalf("BelowThreshold() = %v, want %v", got, tt.want)
			}
		})
	}
}
