package outboxrepo

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/outbox"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add inserts messages. An empty batch is a no-op.
func (r *GormOutboxRepository) Add(ctx context.Context, messages ...outbox.Message) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, FromDomain(m))
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// FetchUnpublished locks up to limit unpublished messages, oldest first. Rows
// locked by a concurrent relay are skipped, so two replicas never publish the
// same message at the same time.
func (r *GormOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]outbox.Message, error) {
	var dtos []MessageDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]outbox.Message, 0, len(dtos))
	for _, dto := range dtos {
		m, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// MarkPublished stamps published_at on the messages.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", rawIDs(ids)).
		Update("published_at", at).Error
}

// MarkFailed increments the attempt counter of the messages.
func (r *GormOutboxRepository) MarkFailed(ctx context.Context, ids []kernel.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", rawIDs(ids)).
		Update("attempts", gorm.Expr("attempts + 1")).Error
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}
