package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewSupplier(t *testing.T) {
	t.Run("valid supplier", func(t *testing.T) {
		s, err := NewSupplier("Nairobi Stagecraft Ltd", "orders@stagecraft.co.ke", "+254700000000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == uuid.Nil {
			t.Fatal("expected generated ID")
		}
		if s.Name != "Nairobi Stagecraft Ltd" {
			t.Fatalf("unexpected name %q", s.Name)
		}
		if s.CreatedAt.IsZero() {
			t.Fatal("expected CreatedAt to be set")
		}
	})

	t.Run("name is trimmed", func(t *testing.T) {
		s, err := NewSupplier("  Rigging Co  ", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Name != "Rigging Co" {
			t.Fatalf("expected trimmed name, got %q", s.Name)
		}
	})

	t.Run("empty name fails", func(t *testing.T) {
		if _, err := NewSupplier("   ", "", ""); err == nil {
			t.Fatal("expected error for blank name")
		}
	})

	t.Run("overlong name fails", func(t *testing.T) {
		if _, err := NewSupplier(strings.Repeat("x", 256), "", ""); err == nil {
			t.Fatal("expected error for overlong name")
		}
	})
}
