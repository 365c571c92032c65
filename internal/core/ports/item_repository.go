package ports

import (
	"context"

	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/kernel"
)

// ItemProcessingRepository stores per-garment processing records.
type ItemProcessingRepository interface {
	Add(ctx context.Context, p *item.Processing) error
	Update(ctx context.Context, p *item.Processing) error

	// GetByOrderItem returns the record of an order line or an
	// errs.ObjectNotFoundError when none was created yet.
	GetByOrderItem(ctx context.Context, orderItemID kernel.UUID) (*item.Processing, error)

	// GetByOrderItemForUpdate is GetByOrderItem holding a row lock.
	GetByOrderItemForUpdate(ctx context.Context, orderItemID kernel.UUID) (*item.Processing, error)

	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*item.Processing, error)
}
