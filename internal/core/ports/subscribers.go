package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/outbox"
)

// OrderStatusSubscriber is notified after a status change has been committed.
// Errors are logged by the emitter and never reach the caller of the use case.
type OrderStatusSubscriber interface {
	OnOrderStatusChanged(ctx context.Context, event order.StatusChanged) error
}

// MessagePublisher hands outbox messages to the message broker.
type MessagePublisher interface {
	Publish(ctx context.Context, messages ...outbox.Message) error
}

// PhotoURLResolver turns stored photo keys into URLs clients can fetch.
type PhotoURLResolver interface {
	ResolveURL(ctx context.Context, key string) (string, error)
}
