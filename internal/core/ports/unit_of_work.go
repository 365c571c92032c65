package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	PartnerRepository() PartnerRepository
	StageRepository() StageRepository
	ItemProcessingRepository() ItemProcessingRepository
	OutboxRepository() OutboxRepository

	// DomainEvents drains the status change events of every order saved through
	// this unit of work. Call it after Commit.
	DomainEvents() []order.StatusChanged
}
