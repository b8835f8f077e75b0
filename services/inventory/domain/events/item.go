package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory context.
const (
	// TopicItemCreated is published when a new Item is persisted.
	TopicItemCreated = "item.created"

	// TopicStockAdjusted is published after every ledger mutation, whether
	// from order receipt, restock, or consumption.
	TopicStockAdjusted = "stock.adjusted"
)

// ItemCreatedEvent is published after a new Item is persisted.
type ItemCreatedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     uuid.UUID `json:"item_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StockAdjustedEvent is published after a ledger increment or decrement.
type StockAdjustedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     uuid.UUID `json:"item_id"`
	Delta      int       `json:"delta"`
	Quantity   int       `json:"quantity"` // stock level after the adjustment
	Reason     string    `json:"reason"`   // "order_received", "restock", "consumed"
	OccurredAt time.Time `json:"occurred_at"`
}
