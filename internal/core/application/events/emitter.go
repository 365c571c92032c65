// Package events fans committed order status changes out to in-process subscribers.
package events

import (
	"context"
	"fmt"
	"log/slog"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// Emitter delivers StatusChanged events to every registered subscriber in
// registration order. A failing or panicking subscriber is logged and skipped;
// it never fails the use case that produced the event, and the durable copy
// of the event already sits in the outbox.
type Emitter struct {
	subscribers []ports.OrderStatusSubscriber
	logger      *slog.Logger
}

func NewEmitter(logger *slog.Logger, subscribers ...ports.OrderStatusSubscriber) *Emitter {
	return &Emitter{
		subscribers: subscribers,
		logger:      logger.With("component", "order-status-emitter"),
	}
}

// Subscribe registers another subscriber. It must not be called concurrently with Emit.
func (e *Emitter) Subscribe(s ports.OrderStatusSubscriber) {
	e.subscribers = append(e.subscribers, s)
}

// Emit hands every event to every subscriber.
func (e *Emitter) Emit(ctx context.Context, events ...order.StatusChanged) {
	for _, event := range events {
		for _, s := range e.subscribers {
			if err := e.notify(ctx, s, event); err != nil {
				e.logger.ErrorContext(ctx, "order status subscriber failed",
					"order_id", event.OrderID.String(),
					"from", event.From.String(),
					"to", event.To.String(),
					"subscriber", fmt.Sprintf("%T", s),
					"error", err,
				)
			}
		}
	}
}

func (e *Emitter) notify(ctx context.Context, s ports.OrderStatusSubscriber, event order.StatusChanged) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("subscriber panicked: %v", r)
		}
	}()
	return s.OnOrderStatusChanged(ctx, event)
}
