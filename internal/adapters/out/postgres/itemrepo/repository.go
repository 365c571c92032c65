package itemrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemProcessingRepository implements ports.ItemProcessingRepository using GORM.
type GormItemProcessingRepository struct {
	db *gorm.DB
}

// NewGormItemProcessingRepository creates a new GORM item processing repository.
func NewGormItemProcessingRepository(db *gorm.DB) *GormItemProcessingRepository {
	return &GormItemProcessingRepository{db: db}
}

// Add saves the first record of an order line.
func (r *GormItemProcessingRepository) Add(ctx context.Context, p *item.Processing) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(p)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing record.
func (r *GormItemProcessingRepository) Update(ctx context.Context, p *item.Processing) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(p)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ProcessingDTO{}).
		Where("id = ?", dto.ID).
		Updates(dto.mutableColumns())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item_processing", p.ID().String())
	}
	return nil
}

// GetByOrderItem returns the record of an order line.
func (r *GormItemProcessingRepository) GetByOrderItem(ctx context.Context, orderItemID kernel.UUID) (*item.Processing, error) {
	return r.getByOrderItem(r.db.WithContext(ctx), orderItemID)
}

// GetByOrderItemForUpdate returns the record of an order line under a row lock.
func (r *GormItemProcessingRepository) GetByOrderItemForUpdate(
	ctx context.Context,
	orderItemID kernel.UUID,
) (*item.Processing, error) {
	return r.getByOrderItem(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), orderItemID)
}

// ListByOrder returns all records created for an order.
func (r *GormItemProcessingRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*item.Processing, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ProcessingDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make([]*item.Processing, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, nil
}

func (r *GormItemProcessingRepository) getByOrderItem(query *gorm.DB, orderItemID kernel.UUID) (*item.Processing, error) {
	if err := orderItemID.Validate(); err != nil {
		return nil, err
	}

	var dto ProcessingDTO
	if err := query.First(&dto, "order_item_id = ?", orderItemID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item_processing", orderItemID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
