package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/services/inventory/domain/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   models.ItemName
		wantErr bool
	}{
		{"valid name", "Valid Item Name", false},
		{"valid name with special chars", "Item-Name_123!@#", false},
		{"valid single space between words", "item name", false},
		{"leading whitespace", " Name", true},
		{"trailing whitespace", "Name ", true},
		{"leading and trailing whitespace", " Name ", true},
		{"only whitespace", "   ", true},
		{"tab character (control)", "Name\tName", true},
		{"newline character (control)", "Name\nName", true},
		{"null byte (control)", "Name\x00", true},
		{"DEL character", "Name\x7F", true},
		{"consecutive spaces", "Item  Name", true},
		{"three consecutive spaces", "Item   Name", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateItemForCreation(t *testing.T) {
	makeItem := func() *models.Item {
		return &models.Item{
			ID:           uuid.New(),
			Name:         "Valid Item",
			Category:     "props",
			Quantity:     5,
			MinThreshold: 2,
			Unit:         "piece",
		}
	}

	t.Run("nil item returns error", func(t *testing.T) {
		if err := ValidateItemForCreation(nil); err == nil {
			t.Fatal("expected error for nil item")
		}
	})

	t.Run("valid item returns nil", func(t *testing.T) {
		if err := ValidateItemForCreation(makeItem()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("zero ID returns error", func(t *testing.T) {
		item := makeItem()
		item.ID = uuid.Nil
		if err := ValidateItemForCreation(item); err == nil {
			t.Fatal("expected error for zero ID")
		}
	})

	t.Run("negative quantity returns error", func(t *testing.T) {
		item := makeItem()
		item.Quantity = -1
		if err := ValidateItemForCreation(item); err == nil {
			t.Fatal("expected error for negative quantity")
		}
	})

	t.Run("negative threshold returns error", func(t *testing.T) {
		item := makeItem()
		item.MinThreshold = -1
		if err := ValidateItemForCreation(item); err == nil {
			t.Fatal("expected error for negative threshold")
		}
	})

	t.Run("blank unit returns error", func(t *testing.T) {
		item := makeItem()
		item.Unit = "  "
		if err := ValidateItemForCreation(item); err == nil {
			t.Fatal("expected error for blank unit")
		}
	})

	t.Run("invalid name propagates error", func(t *testing.T) {
		item := makeItem()
		item.Name = " leading space"
		if err := ValidateItemForCreation(item); err == nil {
			t.Fatal("expected error for invalid name")
		}
	})
}
