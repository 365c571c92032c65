// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. One unit of work wraps one database transaction and hands out
// repositories bound to it, so a use case that changes an order, its partner
// and an item record commits or discards all of it together.
//
// Key Features:
//   - Transaction management across the order, partner, stage, item and outbox repositories
//   - Aggregate tracking so status change events can be drained after commit
//   - Proper isolation between concurrent operations
//
// Usage Patterns:
//
// Single aggregate:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.PartnerRepository().Add(ctx, p); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Fulfillment workflow (rows locked order first, then partner):
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	...
//	p, err := uow.PartnerRepository().GetForUpdate(ctx, *o.AssignedPartner())
//	...
//	if err := uow.Commit(ctx); err != nil {
//	    return err
//	}
//	emitter.Emit(ctx, uow.DomainEvents()...)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance provides an isolated transaction
//   - Multiple goroutines must use separate UnitOfWork instances
//   - Row locks taken through GetForUpdate are held until Commit or Rollback
package postgres

import (
	"context"

	"laundry/internal/adapters/out/postgres/itemrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/outboxrepo"
	"laundry/internal/adapters/out/postgres/partnerrepo"
	"laundry/internal/adapters/out/postgres/stagerepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate saved during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state
// and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// aggregates saved through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. It returns gorm.ErrInvalidTransaction when
// no transaction is open, which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction and every aggregate tracked in it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository provides order persistence bound to the current transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PartnerRepository provides partner persistence bound to the current transaction.
func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return partnerrepo.NewGormPartnerRepository(uow.conn(), uow)
}

// StageRepository provides the stage timeline bound to the current transaction.
func (uow *GormUnitOfWork) StageRepository() ports.StageRepository {
	return stagerepo.NewGormStageRepository(uow.conn())
}

// ItemProcessingRepository provides item records bound to the current transaction.
func (uow *GormUnitOfWork) ItemProcessingRepository() ports.ItemProcessingRepository {
	return itemrepo.NewGormItemProcessingRepository(uow.conn())
}

// OutboxRepository provides the outbox bound to the current transaction.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate saved by one of the repositories.
//
// Example (used by repository implementations):
//
//	if err := r.db.Create(&dto).Error; err != nil {
//	    return err
//	}
//	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// DomainEvents drains the status change events of every tracked order. An
// order saved more than once is drained once.
func (uow *GormUnitOfWork) DomainEvents() []order.StatusChanged {
	seen := make(map[*order.Order]struct{})
	events := make([]order.StatusChanged, 0)

	for _, tracked := range uow.trackedAggregates {
		o, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}

		events = append(events, o.DomainEvents()...)
		o.ClearDomainEvents()
	}

	uow.trackedAggregates = uow.trackedAggregates[:0]
	return events
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
