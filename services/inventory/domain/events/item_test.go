package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/stageops/services/inventory/domain/events"
)

func TestItemCreatedEvent_JSONFieldNames(t *testing.T) {
	evt := events.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     uuid.New(),
		Name:       "Stage paint (black)",
		Category:   "paint",
		Quantity:   8,
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "name", "category", "quantity", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestStockAdjustedEvent_JSONFieldNames(t *testing.T) {
	evt := events.StockAdjustedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     uuid.New(),
		Delta:      -3,
		Quantity:   5,
		Reason:     "consumed",
		OccurredAt: time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{"event_id", "version", "item_id", "delta", "quantity", "reason", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestTopics_Values(t *testing.T) {
	if events.TopicItemCreated != "item.created" {
		t.Errorf("expected %q, got %q", "item.created", events.TopicItemCreated)
	}
	if events.TopicStockAdjusted != "stock.adjusted" {
		t.Errorf("expected %q, got %q", "stock.adjusted", events.TopicStockAdjusted)
	}
}
