package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"laundry/internal/adapters/out/postgres/outboxrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/outbox"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrConcurrentUpdate is returned by Update when the stored version moved on
// since the aggregate was loaded. It unwraps to errs.ErrVersionIsInvalid.
var ErrConcurrentUpdate = errs.NewVersionIsInvalidErrorWithCause("order version")

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.appendHistory(ctx, aggregate); err != nil {
		return err
	}

	aggregate.MarkPersisted(dto.Version)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. The row is only written when its version
// still matches the loaded one; new history rows and their outbox messages go
// into the same transaction.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(dto.mutableColumns())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return ErrConcurrentUpdate
	}

	if err := r.appendHistory(ctx, aggregate); err != nil {
		return err
	}

	aggregate.MarkPersisted(dto.Version + 1)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order holding a row lock until the transaction ends.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// GetHistory returns the status history, oldest first.
func (r *GormOrderRepository) GetHistory(ctx context.Context, id kernel.UUID) ([]order.StatusChange, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusHistoryDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", id.Bytes()).
		Order("changed_at, seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	history := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, err := historyToDomain(dto)
		if err != nil {
			return nil, err
		}
		history = append(history, change)
	}
	return history, nil
}

// GetFirstUnassigned locks the oldest pending order that has no partner, is
// out of its rejection cooldown and can be served by at least one eligible
// partner. Orders locked by a concurrent assignment run are skipped.
//
// Example:
//
//	o, err := repo.GetFirstUnassigned(ctx, time.Now().Add(-5*time.Minute))
//	if errors.Is(err, errs.ErrObjectNotFound) {
//		return nil // nothing to assign
//	}
func (r *GormOrderRepository) GetFirstUnassigned(ctx context.Context, rejectedBefore time.Time) (*order.Order, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("orders.status = ? AND orders.assigned_partner_id IS NULL", order.Pending.String()).
		Where("(orders.partner_rejected_at IS NULL OR orders.partner_rejected_at < ?)", rejectedBefore).
		Where(`EXISTS (
			SELECT 1 FROM partners p
			JOIN partner_service_areas a ON a.partner_id = p.id
			WHERE a.pincode = orders.pincode
			  AND p.status = ? AND p.is_verified = ? AND p.current_load < p.daily_capacity)`,
			partner.Active.String(), true).
		Order("orders.created_at, orders.id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "unassigned")
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

func (r *GormOrderRepository) get(ctx context.Context, query *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return r.restore(ctx, dto)
}

// restore loads the items with a separate plain query so the row lock of the
// order query is not repeated on order_items.
func (r *GormOrderRepository) restore(ctx context.Context, dto OrderDTO) (*order.Order, error) {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("position").
		Find(&dto.Items).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) appendHistory(ctx context.Context, aggregate *order.Order) error {
	changes := aggregate.NewHistory()
	if len(changes) == 0 {
		return nil
	}

	rows := make([]StatusHistoryDTO, 0, len(changes))
	messages := make([]outbox.Message, 0, len(changes))
	for _, change := range changes {
		rows = append(rows, historyFromDomain(change))

		msg, err := outbox.NewStatusChangedMessage(order.StatusChanged{
			OrderID:    change.OrderID,
			CustomerID: aggregate.CustomerID(),
			PartnerID:  change.PartnerID,
			From:       change.From,
			To:         change.To,
			Actor:      change.Actor,
			Notes:      change.Notes,
			OccurredAt: change.ChangedAt,
		})
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("append status history: %w", err)
	}
	if err := outboxrepo.NewGormOutboxRepository(r.db).Add(ctx, messages...); err != nil {
		return fmt.Errorf("write outbox: %w", err)
	}
	return nil
}
