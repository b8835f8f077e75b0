package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a stocked material tracked by the inventory department.
// Quantity is the authoritative stock level; it is mutated only through the
// stock ledger so it can never go negative.
type Item struct {
	ID           uuid.UUID
	Name         ItemName
	Category     string
	Quantity     int
	MinThreshold int
	Unit         string
	CreatedAt    time.Time
}

// NewItem constructs a valid Item with generated ID and current timestamp.
// Initial quantity may be zero but never negative.
func NewItem(name ItemName, category string, quantity, minThreshold int, unit string) (*Item, error) {
	item := &Item{
		ID:           uuid.New(),
		Name:         name,
		Category:     category,
		Quantity:     quantity,
		MinThreshold: minThreshold,
		Unit:         unit,
		CreatedAt:    time.Now().UTC(),
	}
	return item, nil
}

// BelowThreshold reports whether stock has fallen to or under the reorder
// threshold.
func (i *Item) BelowThreshold() bool {
	return i.Quantity <= i.MinThreshold
}
