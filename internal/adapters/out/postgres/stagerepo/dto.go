// Package stagerepo persists the append-only processing stage timeline.
package stagerepo

import (
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/stage"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StageDTO is one timeline row. Seq keeps the insertion order of stages that
// started in the same instant.
type StageDTO struct {
	Seq              uint64         `gorm:"primaryKey;autoIncrement"`
	ID               uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	OrderID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_stages_order_started"`
	Stage            string         `gorm:"type:varchar(32);not null"`
	StageCategory    string         `gorm:"type:varchar(16);not null"`
	PerformedBy      uuid.UUID      `gorm:"type:uuid;not null"`
	Notes            string         `gorm:"type:text"`
	Photos           datatypes.JSON `gorm:"type:jsonb"`
	HasIssue         bool           `gorm:"not null;default:false"`
	IssueDescription string         `gorm:"type:text"`
	StartedAt        time.Time      `gorm:"not null;index:idx_stages_order_started"`
	CompletedAt      *time.Time
}

// TableName overrides GORM's default "stage_dtos".
func (StageDTO) TableName() string {
	return "processing_stages"
}

func fromDomain(s *stage.ProcessingStage) (StageDTO, error) {
	photos, err := json.Marshal(s.Photos())
	if err != nil {
		return StageDTO{}, fmt.Errorf("marshal stage photos: %w", err)
	}

	return StageDTO{
		ID:               s.ID().Bytes(),
		OrderID:          s.OrderID().Bytes(),
		Stage:            s.Stage().String(),
		StageCategory:    string(s.Category()),
		PerformedBy:      s.PerformedBy().Bytes(),
		Notes:            s.Notes(),
		Photos:           datatypes.JSON(photos),
		HasIssue:         s.HasIssue(),
		IssueDescription: s.IssueDescription(),
		StartedAt:        s.StartedAt(),
		CompletedAt:      s.CompletedAt(),
	}, nil
}

func toDomain(dto StageDTO) (*stage.ProcessingStage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	performedBy, err := kernel.UUIDFromBytes(dto.PerformedBy[:])
	if err != nil {
		return nil, err
	}
	s, err := stage.Parse(dto.Stage)
	if err != nil {
		return nil, err
	}
	photos, err := DecodePhotos(dto.Photos)
	if err != nil {
		return nil, err
	}

	var completedAt *time.Time
	if dto.CompletedAt != nil {
		utc := dto.CompletedAt.UTC()
		completedAt = &utc
	}

	return stage.RestoreProcessingStage(id, orderID, stage.Report{
		Stage:            s,
		PerformedBy:      performedBy,
		Notes:            dto.Notes,
		Photos:           photos,
		HasIssue:         dto.HasIssue,
		IssueDescription: dto.IssueDescription,
	}, dto.StartedAt.UTC(), completedAt)
}

// DecodePhotos reads the photo key list of a stage row. NULL and empty
// columns decode to no photos.
func DecodePhotos(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var photos []string
	if err := json.Unmarshal(raw, &photos); err != nil {
		return nil, fmt.Errorf("decode stage photos: %w", err)
	}
	return photos, nil
}
