package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOrderStagesQueryIsNotConstructed = errors.New(
		"GetOrderStagesQuery must be created via NewGetOrderStagesQuery constructor",
	)
)

// GetOrderStagesQuery reads the processing timeline of an order.
type GetOrderStagesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderStagesQuery(orderID kernel.UUID) (GetOrderStagesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStagesQuery{}, err
	}
	return GetOrderStagesQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStagesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStagesQueryIsNotConstructed)
}

func (q GetOrderStagesQuery) OrderID() kernel.UUID { return q.orderID }

// StageView is one timeline entry. Duration is nil until the stage completes.
type StageView struct {
	ID               kernel.UUID
	Stage            string
	Category         string
	PerformedBy      kernel.UUID
	Notes            string
	Photos           []PhotoView
	HasIssue         bool
	IssueDescription string
	StartedAt        time.Time
	CompletedAt      *time.Time
	Duration         *time.Duration
}

// PhotoView pairs the stored key with a URL the client can fetch.
type PhotoView struct {
	Key string
	URL string
}
