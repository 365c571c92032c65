// Package kafka publishes outbox messages to Kafka. Messages are keyed by the
// order id so every change of one order lands on the same partition and keeps
// its order.
package kafka

import (
	"context"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/outbox"

	kafkago "github.com/segmentio/kafka-go"
)

const (
	headerEventType = "event_type"
	headerMessageID = "message_id"
)

// messageWriter is the part of *kafkago.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher implements ports.MessagePublisher.
type Publisher struct {
	writer messageWriter
}

// NewPublisher creates a publisher writing to topic with hash partitioning on
// the message key. WriteMessages blocks until all brokers in sync acknowledge.
func NewPublisher(brokers []string, topic string) *Publisher {
	return NewPublisherWithWriter(&kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	})
}

func NewPublisherWithWriter(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish writes the batch in one call. Kafka either accepts or rejects the
// whole call, which the relay treats as one unit.
func (p *Publisher) Publish(ctx context.Context, messages ...outbox.Message) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafkago.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, toKafkaMessage(m))
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("write %d messages to kafka: %w", len(batch), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessage(m outbox.Message) kafkago.Message {
	return kafkago.Message{
		Key:   []byte(m.AggregateID.String()),
		Value: m.Payload,
		Time:  m.CreatedAt,
		Headers: []kafkago.Header{
			{Key: headerEventType, Value: []byte(m.EventType)},
			{Key: headerMessageID, Value: []byte(m.ID.String())},
		},
	}
}
