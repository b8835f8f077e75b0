package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Role identifies which organizational department an actor belongs to.
type Role string

const (
	RoleInventory Role = "inventory"
	RoleSupplier  Role = "supplier"
	RoleFinance   Role = "finance"
)

// IsValid reports whether r is a member of the closed Role set.
func (r Role) IsValid() bool {
	switch r {
	case RoleInventory, RoleSupplier, RoleFinance:
		return true
	}
	return false
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole converts a raw string into a Role or fails.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Actor is the credential passed explicitly into every gateway call.
// SupplierID is set only for supplier-role actors and binds them to the
// supplier whose orders they may act on.
type Actor struct {
	ID         uuid.UUID
	Name       string
	Role       Role
	SupplierID uuid.UUID
}

// BoundTo reports whether a supplier-role actor is bound to supplierID.
func (a Actor) BoundTo(supplierID uuid.UUID) bool {
	return a.Role == RoleSupplier && a.SupplierID == supplierID
}
