package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/electrocart/services/item/domain/events"
)

func TestReceiptRenderedEvent_JSONFieldNames(t *testing.T) {
	evt := events.ReceiptRenderedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ReceiptKey: "abc123",
		ItemCount:  4,
		ExtraCount: 7,
		Total:      "555.00",
		Detailed:   true,
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

	for _, field := range []string{"event_id", "version", "receipt_key", "item_count", "extra_count", "total", "detailed", "occurred_at"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
	if raw["total"] != "555.00" {
		t.Errorf("total must be encoded as a string, got %v", raw["total"])
	}
}

func TestTopicReceiptRendered_Value(t *testing.T) {
	if events.TopicReceiptRendered != "receipt.rendered" {
		t.Errorf("expected %q, got %q", "receipt.rendered", events.TopicReceiptRendered)
	}
}
