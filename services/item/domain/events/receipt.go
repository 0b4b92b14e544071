package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicReceiptRendered is the Watermill topic published when a receipt is rendered.
const TopicReceiptRendered = "receipt.rendered"

// ReceiptRenderedEvent is published after a receipt has been computed
// (cache hits do not publish).
type ReceiptRenderedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ReceiptKey string    `json:"receipt_key"`
	ItemCount  int       `json:"item_count"`
	ExtraCount int       `json:"extra_count"`
	Total      string    `json:"total"` // two-decimal string, never a float
	Detailed   bool      `json:"detailed"`
	OccurredAt time.Time `json:"occurred_at"`
}
