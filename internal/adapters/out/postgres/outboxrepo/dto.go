// Package outboxrepo stores outbox messages and gives the relay locked access
// to unpublished batches.
package outboxrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/outbox"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageDTO represents one outbox row.
type MessageDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID      `gorm:"type:uuid;not null;index"`
	EventType   string         `gorm:"type:varchar(64);not null"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"not null;index"`
	PublishedAt *time.Time     `gorm:"index"`
	Attempts    int            `gorm:"not null;default:0"`
}

// TableName overrides GORM's default "message_dtos".
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// FromDomain converts a message for insertion. The order repository uses it to
// write messages next to history rows.
func FromDomain(m outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID.Bytes(),
		AggregateID: m.AggregateID.Bytes(),
		EventType:   m.EventType,
		Payload:     datatypes.JSON(m.Payload),
		CreatedAt:   m.CreatedAt,
		PublishedAt: m.PublishedAt,
		Attempts:    m.Attempts,
	}
}

func toDomain(dto MessageDTO) (outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return outbox.Message{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return outbox.Message{}, err
	}

	return outbox.Message{
		ID:          id,
		AggregateID: aggregateID,
		EventType:   dto.EventType,
		Payload:     []byte(dto.Payload),
		CreatedAt:   dto.CreatedAt.UTC(),
		PublishedAt: dto.PublishedAt,
		Attempts:    dto.Attempts,
	}, nil
}
