package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"inventory", "supplier", "finance"} {
		t.Run(s, func(t *testing.T) {
			role, err := ParseRole(s)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role.String() != s {
				t.Fatalf("got %q, want %q", role, s)
			}
		})
	}

	for _, s := range []string{"", "admin", "Finance", "INVENTORY"} {
		t.Run("invalid "+s, func(t *testing.T) {
			if _, err := ParseRole(s); err == nil {
				t.Fatalf("expected error for %q", s)
			}
		})
	}
}

func TestActor_BoundTo(t *testing.T) {
	supplierID := uuid.New()

	t.Run("supplier bound to own supplier", func(t *testing.T) {
		a := Actor{Role: RoleSupplier, SupplierID: supplierID}
		if !a.BoundTo(supplierID) {
			t.Fatal("expected actor bound to its supplier")
		}
	})

	t.Run("supplier not bound to another supplier", func(t *testing.T) {
		a := Actor{Role: RoleSupplier, SupplierID: supplierID}
		if a.BoundTo(uuid.New()) {
			t.Fatal("expected actor not bound to a foreign supplier")
		}
	})

	t.Run("non-supplier roles are never bound", func(t *testing.T) {
		a := Actor{Role: RoleFinance, SupplierID: supplierID}
		if a.BoundTo(supplierID) {
			t.Fatal("finance actors have no supplier binding")
		}
	})
}
