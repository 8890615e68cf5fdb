// Package notification consumes order events from the outbound queue
// and delivers the corresponding email.
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"atelier-store/internal/email"
	"atelier-store/internal/notify"

	"github.com/rs/zerolog"
)

// Mailer is the slice of the email service the handler needs.
type Mailer interface {
	SendNewOrder(to, orderID, customerName, itemSummary, orderLink string, total float64) error
	SendStatusChanged(to, orderID, newStatus, itemSummary, trackingLink string, total float64) error
}

// Handler turns queued order events into outbound mail. New-order
// events go to the store team; status changes go to the customer.
type Handler struct {
	mailer     Mailer
	adminEmail string
	logger     zerolog.Logger
}

// NewHandler creates a new notification handler.
func NewHandler(mailer Mailer, adminEmail string, logger zerolog.Logger) *Handler {
	return &Handler{
		mailer:     mailer,
		adminEmail: adminEmail,
		logger:     logger.With().Str("component", "notification").Logger(),
	}
}

// HandleEvent processes one event from the queue. Unknown event types
// are skipped, not errors: the topic may carry events this consumer
// does not care about.
func (h *Handler) HandleEvent(ctx context.Context, key, value []byte) error {
	var envelope notify.Envelope
	if err := json.Unmarshal(value, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal event envelope: %w", err)
	}

	switch envelope.Type {
	case notify.EventOrderPlaced:
		return h.handleOrderPlaced(value)
	case notify.EventOrderStatusChanged:
		return h.handleStatusChanged(value)
	default:
		h.logger.Debug().Str("type", envelope.Type).Msg("skipping event")
		return nil
	}
}

func (h *Handler) handleOrderPlaced(value []byte) error {
	var event notify.OrderPlacedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal order placed event: %w", err)
	}

	h.logger.Info().Str("order_id", event.OrderID).Msg("sending new order notification")

	err := h.mailer.SendNewOrder(
		h.adminEmail,
		event.OrderID,
		event.CustomerName,
		event.ItemSummary,
		event.OrderLink,
		event.Total,
	)
	if err != nil {
		return fmt.Errorf("failed to send new order email: %w", err)
	}
	return nil
}

func (h *Handler) handleStatusChanged(value []byte) error {
	var event notify.StatusChangedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal status changed event: %w", err)
	}

	if event.CustomerEmail == "" {
		h.logger.Warn().Str("order_id", event.OrderID).Msg("status changed event without customer email, skipping")
		return nil
	}

	h.logger.Info().
		Str("order_id", event.OrderID).
		Str("status", event.NewStatus).
		Msg("sending status change notification")

	err := h.mailer.SendStatusChanged(
		event.CustomerEmail,
		event.OrderID,
		event.NewStatus,
		event.ItemSummary,
		event.TrackingLink,
		event.Total,
	)
	if err != nil {
		return fmt.Errorf("failed to send status change email: %w", err)
	}
	return nil
}

// compile-time check that the concrete email service satisfies Mailer
var _ Mailer = (*email.Service)(nil)
