package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
)

// MessageWriter is the subset of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OrderPublisher writes order lifecycle events keyed by order id, so every
// event for one order lands on the same partition.
type OrderPublisher struct {
	Writer MessageWriter
}

// NewOrderPublisher returns nil when writer is nil; a nil publisher drops
// events silently.
func NewOrderPublisher(writer *kafka.Writer) *OrderPublisher {
	if writer == nil {
		return nil
	}
	return &OrderPublisher{Writer: writer}
}

func (p *OrderPublisher) PublishOrderEvent(ctx context.Context, event models.OrderEvent) error {
	if p == nil || p.Writer == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events.PublishOrderEvent: %w", err)
	}

	err = p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("events.PublishOrderEvent: %w", err)
	}
	return nil
}
