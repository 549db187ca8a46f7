package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/bloodaid/blood-donation-backend/internal/logger"
	"github.com/bloodaid/blood-donation-backend/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisher publishes account events to Kafka on a best-effort
// basis. Publishing failures are logged, never surfaced to the caller:
// an account operation must not fail because the broker is down.
type EventPublisher struct {
	writer KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer disables
// publishing entirely.
func NewEventPublisher(writer KafkaWriter) *EventPublisher {
	return &EventPublisher{writer: writer}
}

// Publish emits one account event with the given type and subject.
func (p *EventPublisher) Publish(ctx context.Context, eventType, subjectID, email string) {
	if p.writer == nil {
		logger.Log.Debugw("kafka writer not configured, skipping publish", "type", eventType)
		return
	}

	event := models.AccountEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		SubjectID: subjectID,
		Email:     email,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal account event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(subjectID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish account event", "type", eventType, "error", err)
		return
	}

	logger.Log.Infow("account event published", "type", eventType, "subject_id", subjectID)
}
