package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
		"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
	)
)

// GetOpenOrdersQuery retrieves every order that is neither delivered nor
// cancelled, oldest first.
//
// Example:
//
//	query := NewGetOpenOrdersQuery()
//	handler := NewGetOpenOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("Order %s is %s\n", o.ID, o.Status)
//	}
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a parameterless query for the open workload.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse is the summary of one open order.
type GetOpenOrdersQueryResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	Pincode           string
	Status            string
	AssignedPartnerID *kernel.UUID
	CreatedAt         time.Time
}
