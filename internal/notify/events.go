// Package notify dispatches outbound notification events to a message
// queue. Publishing is fire-and-forget from the caller's perspective:
// the order flow never waits on, or fails because of, a notification.
package notify

import (
	"fmt"
	"strings"
	"time"

	"atelier-store/internal/model"
)

// Event types carried on the order events topic.
const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// Envelope wraps every event published to the topic.
type Envelope struct {
	Type       string    `json:"type"`
	OrderID    string    `json:"orderId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderPlacedEvent notifies the store that a new order was created.
type OrderPlacedEvent struct {
	Envelope
	CustomerName string  `json:"customerName"`
	Total        float64 `json:"total"`
	ItemSummary  string  `json:"itemSummary"`
	OrderLink    string  `json:"orderLink"`
}

// StatusChangedEvent notifies the customer that their order moved to
// a new status.
type StatusChangedEvent struct {
	Envelope
	CustomerEmail string  `json:"customerEmail"`
	NewStatus     string  `json:"newStatus"`
	ItemSummary   string  `json:"itemSummary"`
	Total         float64 `json:"total"`
	TrackingLink  string  `json:"trackingLink,omitempty"`
}

// ItemSummary renders a one-line human-readable summary of the
// ordered items, e.g. "1× Classic Trench Coat (Beige/M), 2× Silk Blouse (Ivory/S)".
func ItemSummary(items []model.LineItem) string {
	parts := make([]string, 0, len(items))
	for i := range items {
		item := &items[i]
		variant := ""
		if item.SelectedColor != "" || item.SelectedSize != "" {
			variant = fmt.Sprintf(" (%s/%s)", item.SelectedColor, item.SelectedSize)
		}
		parts = append(parts, fmt.Sprintf("%d× %s%s", item.Quantity, item.Name, variant))
	}
	return strings.Join(parts, ", ")
}
