package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicSupplierCreated is published when a new Supplier is registered.
const TopicSupplierCreated = "supplier.created"

// SupplierCreatedEvent is published after a new Supplier is persisted.
type SupplierCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	SupplierID uuid.UUID `json:"supplier_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}
