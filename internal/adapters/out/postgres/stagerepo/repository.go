package stagerepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrAlreadyCompleted is returned by Complete when the stored row already has
// a completion time.
var ErrAlreadyCompleted = errors.New("stage already completed")

// GormStageRepository implements ports.StageRepository using GORM.
type GormStageRepository struct {
	db *gorm.DB
}

// NewGormStageRepository creates a new GORM stage repository.
func NewGormStageRepository(db *gorm.DB) *GormStageRepository {
	return &GormStageRepository{db: db}
}

// Add appends a stage to the timeline.
func (r *GormStageRepository) Add(ctx context.Context, s *stage.ProcessingStage) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(s)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Complete writes completed_at once. A row that is already completed is left
// untouched and ErrAlreadyCompleted is returned.
func (r *GormStageRepository) Complete(ctx context.Context, s *stage.ProcessingStage) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.CompletedAt() == nil {
		return errs.NewValueIsRequiredError("completed_at")
	}

	result := r.db.WithContext(ctx).
		Model(&StageDTO{}).
		Where("id = ? AND completed_at IS NULL", s.ID().Bytes()).
		Update("completed_at", *s.CompletedAt())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&StageDTO{}).Where("id = ?", s.ID().Bytes()).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("stage", s.ID().String())
		}
		return ErrAlreadyCompleted
	}
	return nil
}

// GetForUpdate retrieves a stage under a row lock.
func (r *GormStageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*stage.ProcessingStage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StageDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stage", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByOrder returns the timeline ordered by start time then insertion.
func (r *GormStageRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*stage.ProcessingStage, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StageDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("started_at, seq").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	stages := make([]*stage.ProcessingStage, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		stages = append(stages, s)
	}
	return stages, nil
}
