package queries

import (
	"context"
	"time"

	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type itemProcessingRow struct {
	ID                      uuid.UUID
	OrderID                 uuid.UUID
	OrderItemID             uuid.UUID
	Status                  string
	InitialCondition        string
	FinalCondition          string
	HasStains               bool
	StainNotes              string
	StainPhotos             datatypes.JSON
	HasDamage               bool
	DamageNotes             string
	DamagePhotos            datatypes.JSON
	InspectionAt            *time.Time
	WashingStartedAt        *time.Time
	WashingCompletedAt      *time.Time
	DryingStartedAt         *time.Time
	DryingCompletedAt       *time.Time
	IroningStartedAt        *time.Time
	IroningCompletedAt      *time.Time
	QualityCheckedAt        *time.Time
	PackagedAt              *time.Time
	CompletedAt             *time.Time
	QualityScore            *int
	AdditionalCharges       decimal.Decimal
	AdditionalChargesReason string
	ProcessedBy             uuid.NullUUID
	Notes                   string
}

// GetItemProcessingQueryHandler reads item_processing. A record only exists
// after the first status update of the order line, so a missing record is
// reported as not found even when the order line exists.
type GetItemProcessingQueryHandler struct {
	db *gorm.DB
}

func NewGetItemProcessingQueryHandler(db *gorm.DB) GetItemProcessingQueryHandler {
	return GetItemProcessingQueryHandler{db: db}
}

func (h GetItemProcessingQueryHandler) Handle(
	ctx context.Context,
	query GetItemProcessingQuery,
) (GetItemProcessingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetItemProcessingQueryResponse{}, err
	}

	var rows []itemProcessingRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_id, order_item_id, status,
			initial_condition, final_condition,
			has_stains, stain_notes, stain_photos,
			has_damage, damage_notes, damage_photos,
			inspection_at, washing_started_at, washing_completed_at,
			drying_started_at, drying_completed_at,
			ironing_started_at, ironing_completed_at,
			quality_checked_at, packaged_at, completed_at,
			quality_score, additional_charges, additional_charges_reason,
			processed_by, notes
		FROM item_processing
		WHERE order_id = ? AND order_item_id = ?
	`, query.OrderID().Bytes(), query.OrderItemID().Bytes()).Scan(&rows).Error
	if err != nil {
		return GetItemProcessingQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetItemProcessingQueryResponse{}, errs.NewObjectNotFoundError("item_processing", query.OrderItemID())
	}

	return itemProcessingResponse(rows[0])
}

func itemProcessingResponse(row itemProcessingRow) (GetItemProcessingQueryResponse, error) {
	id, err := kernelID(row.ID)
	if err != nil {
		return GetItemProcessingQueryResponse{}, err
	}
	orderID, err := kernelID(row.OrderID)
	if err != nil {
		return GetItemProcessingQueryResponse{}, err
	}
	orderItemID, err := kernelID(row.OrderItemID)
	if err != nil {
		return GetItemProcessingQueryResponse{}, err
	}
	processedBy, err := kernelNullID(row.ProcessedBy)
	if err != nil {
		return GetItemProcessingQueryResponse{}, err
	}
	stainPhotos, err := decodeKeys(row.StainPhotos)
	if err != nil {
		return GetItemProcessingQueryResponse{}, err
	}
	damagePhotos, err := decodeKeys(row.DamagePhotos)
	if err != nil {
		return GetItemProcessingQueryResponse{}, err
	}

	resp := GetItemProcessingQueryResponse{
		ID:                      id,
		OrderID:                 orderID,
		OrderItemID:             orderItemID,
		Status:                  row.Status,
		InitialCondition:        row.InitialCondition,
		FinalCondition:          row.FinalCondition,
		HasStains:               row.HasStains,
		StainNotes:              row.StainNotes,
		StainPhotos:             stainPhotos,
		HasDamage:               row.HasDamage,
		DamageNotes:             row.DamageNotes,
		DamagePhotos:            damagePhotos,
		InspectionAt:            utcPtr(row.InspectionAt),
		WashingStartedAt:        utcPtr(row.WashingStartedAt),
		WashingCompletedAt:      utcPtr(row.WashingCompletedAt),
		DryingStartedAt:         utcPtr(row.DryingStartedAt),
		DryingCompletedAt:       utcPtr(row.DryingCompletedAt),
		IroningStartedAt:        utcPtr(row.IroningStartedAt),
		IroningCompletedAt:      utcPtr(row.IroningCompletedAt),
		QualityCheckedAt:        utcPtr(row.QualityCheckedAt),
		PackagedAt:              utcPtr(row.PackagedAt),
		CompletedAt:             utcPtr(row.CompletedAt),
		QualityScore:            row.QualityScore,
		AdditionalCharges:       row.AdditionalCharges,
		AdditionalChargesReason: row.AdditionalChargesReason,
		ProcessedBy:             processedBy,
		Notes:                   row.Notes,
	}

	if resp.InspectionAt != nil && resp.CompletedAt != nil {
		hours := resp.CompletedAt.Sub(*resp.InspectionAt).Hours()
		resp.ProcessingHours = &hours
	}
	return resp, nil
}
