package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the procurement context.
const (
	// TopicOrderCreated is published when a new order is persisted.
	TopicOrderCreated = "order.created"

	// TopicOrderChanged is published after any persisted transition, on
	// either dimension. Consumers (dashboards, notifiers) treat it as a
	// best-effort refresh hint, never as authoritative state.
	TopicOrderChanged = "order.changed"
)

// OrderCreatedEvent is published after a new order is persisted.
type OrderCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	OrderID    uuid.UUID `json:"order_id"`
	ItemID     uuid.UUID `json:"item_id"`
	ItemName   string    `json:"item_name"`
	SupplierID uuid.UUID `json:"supplier_id"`
	Quantity   int       `json:"quantity"`
	TotalCost  string    `json:"total_cost"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderChangedEvent is published after any transition commits.
type OrderChangedEvent struct {
	EventID       uuid.UUID `json:"event_id"`
	Version       int       `json:"version"`
	OrderID       uuid.UUID `json:"order_id"`
	SupplierID    uuid.UUID `json:"supplier_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
