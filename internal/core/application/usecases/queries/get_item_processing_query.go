package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetItemProcessingQueryIsNotConstructed = errors.New(
		"GetItemProcessingQuery must be created via NewGetItemProcessingQuery constructor",
	)
)

// GetItemProcessingQuery reads the processing record of one order line.
type GetItemProcessingQuery struct {
	orderID     kernel.UUID
	orderItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetItemProcessingQuery(orderID, orderItemID kernel.UUID) (GetItemProcessingQuery, error) {
	if err := errors.Join(orderID.Validate(), orderItemID.Validate()); err != nil {
		return GetItemProcessingQuery{}, err
	}
	return GetItemProcessingQuery{
		orderID:     orderID,
		orderItemID: orderItemID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q GetItemProcessingQuery) Validate() error {
	return q.guard.Validate(ErrGetItemProcessingQueryIsNotConstructed)
}

func (q GetItemProcessingQuery) OrderID() kernel.UUID     { return q.orderID }
func (q GetItemProcessingQuery) OrderItemID() kernel.UUID { return q.orderItemID }

// GetItemProcessingQueryResponse is the record with its phase timestamps.
// ProcessingHours is set once both inspection and completion are stamped.
type GetItemProcessingQueryResponse struct {
	ID                      kernel.UUID
	OrderID                 kernel.UUID
	OrderItemID             kernel.UUID
	Status                  string
	InitialCondition        string
	FinalCondition          string
	HasStains               bool
	StainNotes              string
	StainPhotos             []string
	HasDamage               bool
	DamageNotes             string
	DamagePhotos            []string
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
	ProcessedBy             *kernel.UUID
	Notes                   string
	ProcessingHours         *float64
}
