package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery reads one order with its garment lines and status history.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse is the full read model of an order.
type GetOrderQueryResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	PickupAddressID   kernel.UUID
	DeliveryAddressID kernel.UUID
	Pincode           string
	Status            string
	PaymentStatus     string
	Subtotal          decimal.Decimal
	DeliveryFee       decimal.Decimal
	Discount          decimal.Decimal
	Tax               decimal.Decimal
	Total             decimal.Decimal
	AssignedPartnerID *kernel.UUID
	PartnerAcceptedAt *time.Time
	PartnerRejectedAt *time.Time
	RejectionReason   string
	CreatedAt         time.Time
	ConfirmedAt       *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
	Version           int
	Items             []OrderItemView
	History           []StatusChangeView
}

// OrderItemView is one garment line.
type OrderItemView struct {
	ID       kernel.UUID
	Garment  string
	Service  string
	Quantity int
}

// StatusChangeView is one history row, oldest first.
type StatusChangeView struct {
	From      string
	To        string
	ActorID   kernel.UUID
	Notes     string
	ChangedAt time.Time
}
