package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Notifier is the outbound notification port consumed by the order
// flow. Implementations return an error for logging only; callers
// must not treat a notification failure as an operation failure.
type Notifier interface {
	OrderPlaced(ctx context.Context, event OrderPlacedEvent) error
	OrderStatusChanged(ctx context.Context, event StatusChangedEvent) error
}

// Publisher writes notification events to a Kafka topic, keyed by
// order ID so events for one order stay in partition order.
type Publisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// NewPublisher creates a Kafka-backed notification publisher.
func NewPublisher(brokers []string, topic string, logger zerolog.Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Publisher{
		writer: writer,
		logger: logger.With().Str("component", "notify").Logger(),
	}
}

// OrderPlaced publishes a new-order event.
func (p *Publisher) OrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	event.Type = EventOrderPlaced
	return p.publish(ctx, event.OrderID, event)
}

// OrderStatusChanged publishes a status-changed event.
func (p *Publisher) OrderStatusChanged(ctx context.Context, event StatusChangedEvent) error {
	event.Type = EventOrderStatusChanged
	return p.publish(ctx, event.OrderID, event)
}

func (p *Publisher) publish(ctx context.Context, key string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	})
	if err != nil {
		return err
	}

	p.logger.Debug().Str("order_id", key).Msg("notification event published")
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
