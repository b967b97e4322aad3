// Package events publishes payment change events to Kafka. Publishing is
// best effort; the API response never depends on it.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/aibek/payments-admin/internal/models"
)

const Topic = "payments.changed"

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type ChangeEvent struct {
	Action    string          `json:"action"`
	PaymentID string          `json:"payment_id,omitempty"`
	Payment   *models.Payment `json:"payment,omitempty"`
	Deleted   []string        `json:"deleted_ids,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher emits change events. A nil *Publisher is a no-op, so callers do
// not need to branch on whether Kafka is configured.
type Publisher struct {
	writer messageWriter
	closer interface{ Close() error }
}

// NewPublisher returns a Publisher writing to the payments.changed topic, or
// nil when no brokers are configured.
func NewPublisher(brokers string) *Publisher {
	if brokers == "" {
		return nil
	}
	w := &kafka.Writer{
		Addr:     kafka.TCP(brokers),
		Topic:    Topic,
		Balancer: &kafka.LeastBytes{},
	}
	return &Publisher{writer: w, closer: w}
}

// NewPublisherWithWriter injects a writer directly; used by tests.
func NewPublisherWithWriter(w messageWriter) *Publisher {
	return &Publisher{writer: w}
}

func (p *Publisher) Publish(ctx context.Context, event ChangeEvent) error {
	if p == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	key := event.PaymentID
	if key == "" {
		key = event.Action
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
}

func (p *Publisher) Close() error {
	if p == nil || p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
