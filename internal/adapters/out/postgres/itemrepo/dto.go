// Package itemrepo persists per-garment processing records.
package itemrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProcessingDTO is the stored shape of an item processing record. There is at
// most one record per order line.
type ProcessingDTO struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderItemID             uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Status                  string          `gorm:"type:varchar(32);not null"`
	InitialCondition        string          `gorm:"type:varchar(16)"`
	FinalCondition          string          `gorm:"type:varchar(16)"`
	HasStains               bool            `gorm:"not null;default:false"`
	StainNotes              string          `gorm:"type:text"`
	StainPhotos             datatypes.JSON  `gorm:"type:jsonb"`
	HasDamage               bool            `gorm:"not null;default:false"`
	DamageNotes             string          `gorm:"type:text"`
	DamagePhotos            datatypes.JSON  `gorm:"type:jsonb"`
	InspectionAt            *time.Time      `gorm:"column:inspection_at"`
	WashingStartedAt        *time.Time      `gorm:"column:washing_started_at"`
	WashingCompletedAt      *time.Time      `gorm:"column:washing_completed_at"`
	DryingStartedAt         *time.Time      `gorm:"column:drying_started_at"`
	DryingCompletedAt       *time.Time      `gorm:"column:drying_completed_at"`
	IroningStartedAt        *time.Time      `gorm:"column:ironing_started_at"`
	IroningCompletedAt      *time.Time      `gorm:"column:ironing_completed_at"`
	QualityCheckedAt        *time.Time      `gorm:"column:quality_checked_at"`
	PackagedAt              *time.Time      `gorm:"column:packaged_at"`
	CompletedAt             *time.Time      `gorm:"column:completed_at"`
	QualityScore            *int            `gorm:"type:int"`
	AdditionalCharges       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AdditionalChargesReason string          `gorm:"type:text"`
	ProcessedBy             *uuid.UUID      `gorm:"type:uuid"`
	Notes                   string          `gorm:"type:text"`
}

// TableName overrides GORM's default "processing_dtos".
func (ProcessingDTO) TableName() string {
	return "item_processing"
}

func fromDomain(p *item.Processing) (ProcessingDTO, error) {
	s := p.Snapshot()

	stainPhotos, err := encodePhotos(s.Findings.StainPhotos)
	if err != nil {
		return ProcessingDTO{}, err
	}
	damagePhotos, err := encodePhotos(s.Findings.DamagePhotos)
	if err != nil {
		return ProcessingDTO{}, err
	}

	var processedBy *uuid.UUID
	if s.ProcessedBy != nil {
		raw := s.ProcessedBy.Bytes()
		processedBy = &raw
	}

	ts := s.Timestamps
	return ProcessingDTO{
		ID:                      s.ID.Bytes(),
		OrderID:                 s.OrderID.Bytes(),
		OrderItemID:             s.OrderItemID.Bytes(),
		Status:                  s.Status.String(),
		InitialCondition:        string(s.Findings.InitialCondition),
		FinalCondition:          string(s.Findings.FinalCondition),
		HasStains:               s.Findings.HasStains,
		StainNotes:              s.Findings.StainNotes,
		StainPhotos:             stainPhotos,
		HasDamage:               s.Findings.HasDamage,
		DamageNotes:             s.Findings.DamageNotes,
		DamagePhotos:            damagePhotos,
		InspectionAt:            ts.InspectionAt,
		WashingStartedAt:        ts.WashingStartedAt,
		WashingCompletedAt:      ts.WashingCompletedAt,
		DryingStartedAt:         ts.DryingStartedAt,
		DryingCompletedAt:       ts.DryingCompletedAt,
		IroningStartedAt:        ts.IroningStartedAt,
		IroningCompletedAt:      ts.IroningCompletedAt,
		QualityCheckedAt:        ts.QualityCheckedAt,
		PackagedAt:              ts.PackagedAt,
		CompletedAt:             ts.CompletedAt,
		QualityScore:            s.QualityScore,
		AdditionalCharges:       s.AdditionalCharges,
		AdditionalChargesReason: s.AdditionalChargesReason,
		ProcessedBy:             processedBy,
		Notes:                   s.Notes,
	}, nil
}

// mutableColumns lists every column except the identifiers so that NULLs and
// false values are written too.
func (dto ProcessingDTO) mutableColumns() map[string]any {
	return map[string]any{
		"status":                    dto.Status,
		"initial_condition":         dto.InitialCondition,
		"final_condition":           dto.FinalCondition,
		"has_stains":                dto.HasStains,
		"stain_notes":               dto.StainNotes,
		"stain_photos":              dto.StainPhotos,
		"has_damage":                dto.HasDamage,
		"damage_notes":              dto.DamageNotes,
		"damage_photos":             dto.DamagePhotos,
		"inspection_at":             dto.InspectionAt,
		"washing_started_at":        dto.WashingStartedAt,
		"washing_completed_at":      dto.WashingCompletedAt,
		"drying_started_at":         dto.DryingStartedAt,
		"drying_completed_at":       dto.DryingCompletedAt,
		"ironing_started_at":        dto.IroningStartedAt,
		"ironing_completed_at":      dto.IroningCompletedAt,
		"quality_checked_at":        dto.QualityCheckedAt,
		"packaged_at":               dto.PackagedAt,
		"completed_at":              dto.CompletedAt,
		"quality_score":             dto.QualityScore,
		"additional_charges":        dto.AdditionalCharges,
		"additional_charges_reason": dto.AdditionalChargesReason,
		"processed_by":              dto.ProcessedBy,
		"notes":                     dto.Notes,
	}
}

func toDomain(dto ProcessingDTO) (*item.Processing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	orderItemID, err := kernel.UUIDFromBytes(dto.OrderItemID[:])
	if err != nil {
		return nil, err
	}
	status, err := item.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	stainPhotos, err := DecodePhotos(dto.StainPhotos)
	if err != nil {
		return nil, err
	}
	damagePhotos, err := DecodePhotos(dto.DamagePhotos)
	if err != nil {
		return nil, err
	}

	var processedBy *kernel.UUID
	if dto.ProcessedBy != nil {
		by, byErr := kernel.UUIDFromBytes((*dto.ProcessedBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		processedBy = &by
	}

	return item.RestoreProcessing(item.State{
		ID:          id,
		OrderID:     orderID,
		OrderItemID: orderItemID,
		Status:      status,
		Findings: item.Findings{
			InitialCondition: item.Condition(dto.InitialCondition),
			FinalCondition:   item.Condition(dto.FinalCondition),
			HasStains:        dto.HasStains,
			StainNotes:       dto.StainNotes,
			StainPhotos:      stainPhotos,
			HasDamage:        dto.HasDamage,
			DamageNotes:      dto.DamageNotes,
			DamagePhotos:     damagePhotos,
		},
		Timestamps: item.Timestamps{
			InspectionAt:       utcPtr(dto.InspectionAt),
			WashingStartedAt:   utcPtr(dto.WashingStartedAt),
			WashingCompletedAt: utcPtr(dto.WashingCompletedAt),
			DryingStartedAt:    utcPtr(dto.DryingStartedAt),
			DryingCompletedAt:  utcPtr(dto.DryingCompletedAt),
			IroningStartedAt:   utcPtr(dto.IroningStartedAt),
			IroningCompletedAt: utcPtr(dto.IroningCompletedAt),
			QualityCheckedAt:   utcPtr(dto.QualityCheckedAt),
			PackagedAt:         utcPtr(dto.PackagedAt),
			CompletedAt:        utcPtr(dto.CompletedAt),
		},
		QualityScore:            dto.QualityScore,
		AdditionalCharges:       dto.AdditionalCharges,
		AdditionalChargesReason: dto.AdditionalChargesReason,
		ProcessedBy:             processedBy,
		Notes:                   dto.Notes,
	})
}

func encodePhotos(photos []string) (datatypes.JSON, error) {
	if photos == nil {
		photos = []string{}
	}
	raw, err := json.Marshal(photos)
	if err != nil {
		return nil, fmt.Errorf("marshal item photos: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// DecodePhotos reads a photo key list column. NULL decodes to no photos.
func DecodePhotos(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var photos []string
	if err := json.Unmarshal(raw, &photos); err != nil {
		return nil, fmt.Errorf("decode item photos: %w", err)
	}
	return photos, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
