package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"

	"github.com/aibek/payments-admin/internal/models"
)

type captureWriter struct {
	messages []kafka.Message
	err      error
}

func (w *captureWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestPublish(t *testing.T) {
	t.Parallel()

	writer := &captureWriter{}
	p := NewPublisherWithWriter(writer)

	payment := &models.Payment{ID: "p-1", Name: "Alice", Amount: 150, Status: models.StatusSuccess}
	if err := p.Publish(context.Background(), ChangeEvent{
		Action:    ActionCreated,
		PaymentID: payment.ID,
		Payment:   payment,
	}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	if len(writer.messages) != 1 {
		t.Fatalf("wrote %d messages, want 1", len(writer.messages))
	}
	msg := writer.messages[0]
	if string(msg.Key) != "p-1" {
		t.Errorf("key = %q, want p-1", msg.Key)
	}

	var event ChangeEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		t.Fatalf("event value is not JSON: %v", err)
	}
	if event.Action != ActionCreated || event.Payment == nil || event.Payment.ID != "p-1" {
		t.Errorf("unexpected event %+v", event)
	}
	if event.Timestamp.IsZero() {
		t.Error("Publish did not stamp the event")
	}
}

func TestPublishBatchDeleteKeyFallsBackToAction(t *testing.T) {
	t.Parallel()

	writer := &captureWriter{}
	p := NewPublisherWithWriter(writer)

	if err := p.Publish(context.Background(), ChangeEvent{
		Action:  ActionDeleted,
		Deleted: []string{"a", "b"},
	}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if string(writer.messages[0].Key) != ActionDeleted {
		t.Errorf("key = %q, want %q", writer.messages[0].Key, ActionDeleted)
	}
}

func TestPublishPropagatesWriterError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("broker gone")
	p := NewPublisherWithWriter(&captureWriter{err: wantErr})
	if err := p.Publish(context.Background(), ChangeEvent{Action: ActionUpdated}); !errors.Is(err, wantErr) {
		t.Errorf("Publish = %v, want %v", err, wantErr)
	}
}

func TestNilPublisherIsNoOp(t *testing.T) {
	t.Parallel()

	var p *Publisher
	if err := p.Publish(context.Background(), ChangeEvent{Action: ActionCreated}); err != nil {
		t.Errorf("nil publisher Publish = %v, want nil", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("nil publisher Close = %v, want nil", err)
	}
	if NewPublisher("") != nil {
		t.Error("NewPublisher with no brokers should return nil")
	}
}
