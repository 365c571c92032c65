// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerRepoFactory provides access to partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// StageRepoFactory provides access to the stage timeline within a transaction.
	StageRepoFactory interface {
		StageRepository() ports.StageRepository
	}

	// ItemRepoFactory provides access to item processing records within a transaction.
	ItemRepoFactory interface {
		ItemProcessingRepository() ports.ItemProcessingRepository
	}

	// OutboxRepoFactory provides access to the outbox within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// EventSource drains status change events collected by saved orders.
	EventSource interface {
		DomainEvents() []order.StatusChanged
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// StageUoW manages transactions touching only the stage timeline.
	StageUoW interface {
		TxManager
		StageRepoFactory
	}

	// StageUoWFactory creates new stage unit of work instances.
	StageUoWFactory interface {
		Create() StageUoW
	}

	// OutboxUoW manages transactions of the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// UoW manages transactions across orders, partners, stages and items.
	// Used for the fulfillment workflow where one request changes several
	// aggregates. Rows are locked in the order: order, partner, item.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   p, err := uow.PartnerRepository().GetForUpdate(ctx, *o.AssignedPartner())
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	//   emitter.Emit(ctx, uow.DomainEvents()...)
	UoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		StageRepoFactory
		ItemRepoFactory
		EventSource
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// EventEmitter delivers committed status changes to subscribers.
	EventEmitter interface {
		Emit(ctx context.Context, events ...order.StatusChanged)
	}
)
