package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Supplier is an external vendor the theater procures from. Orders snapshot
// the supplier's id and name at creation time.
type Supplier struct {
	ID        uuid.UUID
	Name      string
	Contact   string
	Phone     string
	CreatedAt time.Time
}

// NewSupplier constructs a valid Supplier with generated ID and current timestamp.
func NewSupplier(name, contact, phone string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("supplier name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("supplier name must not exceed 255 characters")
	}
	return &Supplier{
		ID:        uuid.New(),
		Name:      name,
		Contact:   contact,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}, nil
}
