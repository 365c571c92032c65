package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// together with their items and status history.
type OrderRepository interface {
	// Add persists a new order with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Status changes recorded on
	// the aggregate since it was loaded are appended to the history and written
	// to the outbox in the same transaction.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and holds a row lock on it until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetHistory returns the status history of an order, oldest first.
	GetHistory(ctx context.Context, id kernel.UUID) ([]order.StatusChange, error)

	// GetFirstUnassigned locks the oldest pending order without a partner whose
	// last rejection, if any, happened before rejectedBefore. Rows locked by
	// other transactions are skipped.
	GetFirstUnassigned(ctx context.Context, rejectedBefore time.Time) (*order.Order, error)
}
