// Package outbox defines the durable message written next to every order status
// change so the change reaches the message broker at least once.
package outbox

import (
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// EventOrderStatusChanged is the event type of status change messages.
const EventOrderStatusChanged = "order.status_changed"

// Message is one outbox row.
type Message struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
	Attempts    int
}

// StatusChangedPayload is the JSON body of an order.status_changed message.
type StatusChangedPayload struct {
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	PartnerID  *string   `json:"partner_id,omitempty"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Actor      string    `json:"actor"`
	Notes      string    `json:"notes,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewStatusChangedMessage serialises a status change event.
func NewStatusChangedMessage(event order.StatusChanged) (Message, error) {
	payload := StatusChangedPayload{
		OrderID:    event.OrderID.String(),
		CustomerID: event.CustomerID.String(),
		From:       event.From.String(),
		To:         event.To.String(),
		Actor:      event.Actor.String(),
		Notes:      event.Notes,
		OccurredAt: event.OccurredAt.UTC(),
	}
	if event.PartnerID != nil {
		id := event.PartnerID.String()
		payload.PartnerID = &id
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, fmt.Errorf("marshal %s payload: %w", EventOrderStatusChanged, err)
	}

	return Message{
		ID:          kernel.NewUUID(),
		AggregateID: event.OrderID,
		EventType:   EventOrderStatusChanged,
		Payload:     raw,
		CreatedAt:   event.OccurredAt,
	}, nil
}
