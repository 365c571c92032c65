// Package orderrepo persists order aggregates: the order row, its garment lines
// and the append-only status history. Status changes are written to the outbox
// in the same transaction as the order row.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	PickupAddressID   uuid.UUID       `gorm:"type:uuid;not null"`
	DeliveryAddressID uuid.UUID       `gorm:"type:uuid;not null"`
	Pincode           string          `gorm:"type:varchar(6);not null;index"`
	Status            string          `gorm:"type:varchar(32);not null;index"`
	PaymentStatus     string          `gorm:"type:varchar(16);not null"`
	Subtotal          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Discount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Tax               decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	AssignedPartnerID *uuid.UUID      `gorm:"type:uuid;index"`
	PartnerAcceptedAt *time.Time
	PartnerRejectedAt *time.Time
	RejectionReason   string    `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"not null;index"`
	ConfirmedAt       *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
	Version           int            `gorm:"not null;default:0"`
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one garment line of an order.
type OrderItemDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Position int       `gorm:"type:int;not null"`
	Garment  string    `gorm:"type:varchar(255);not null"`
	Service  string    `gorm:"type:varchar(255);not null"`
	Quantity int       `gorm:"type:int;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// StatusHistoryDTO is one immutable row of the status history. Seq keeps the
// insertion order of changes recorded within the same instant.
type StatusHistoryDTO struct {
	Seq        uint64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	PartnerID  *uuid.UUID `gorm:"type:uuid"`
	FromStatus string     `gorm:"type:varchar(32);not null"`
	ToStatus   string     `gorm:"type:varchar(32);not null"`
	ActorID    uuid.UUID  `gorm:"type:uuid;not null"`
	Notes      string     `gorm:"type:text"`
	ChangedAt  time.Time  `gorm:"not null"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	s := aggregate.Snapshot()
	orderID := s.ID.Bytes()

	items := make([]OrderItemDTO, 0, len(s.Items))
	for i, it := range s.Items {
		items = append(items, OrderItemDTO{
			ID:       it.ID().Bytes(),
			OrderID:  orderID,
			Position: i,
			Garment:  it.Garment(),
			Service:  it.Service(),
			Quantity: it.Quantity(),
		})
	}

	var partnerID *uuid.UUID
	if s.AssignedPartner != nil {
		raw := s.AssignedPartner.Bytes()
		partnerID = &raw
	}

	return OrderDTO{
		ID:                orderID,
		CustomerID:        s.CustomerID.Bytes(),
		PickupAddressID:   s.Addresses.Pickup.Bytes(),
		DeliveryAddressID: s.Addresses.Delivery.Bytes(),
		Pincode:           s.Pincode.String(),
		Status:            s.Status.String(),
		PaymentStatus:     string(s.PaymentStatus),
		Subtotal:          s.Financials.Subtotal(),
		DeliveryFee:       s.Financials.DeliveryFee(),
		Discount:          s.Financials.Discount(),
		Tax:               s.Financials.Tax(),
		Total:             s.Financials.Total(),
		AssignedPartnerID: partnerID,
		PartnerAcceptedAt: s.PartnerAcceptedAt,
		PartnerRejectedAt: s.PartnerRejectedAt,
		RejectionReason:   s.RejectionReason,
		CreatedAt:         s.CreatedAt,
		ConfirmedAt:       s.ConfirmedAt,
		CompletedAt:       s.CompletedAt,
		CancelledAt:       s.CancelledAt,
		Version:           s.Version,
		Items:             items,
	}
}

// mutableColumns lists the columns Update writes. Nil pointers are written as
// NULL, which a struct based Updates call would skip.
func (dto OrderDTO) mutableColumns() map[string]any {
	return map[string]any{
		"status":              dto.Status,
		"payment_status":      dto.PaymentStatus,
		"assigned_partner_id": dto.AssignedPartnerID,
		"partner_accepted_at": dto.PartnerAcceptedAt,
		"partner_rejected_at": dto.PartnerRejectedAt,
		"rejection_reason":    dto.RejectionReason,
		"confirmed_at":        dto.ConfirmedAt,
		"completed_at":        dto.CompletedAt,
		"cancelled_at":        dto.CancelledAt,
		"version":             dto.Version + 1,
	}
}

// toDomain rebuilds the aggregate through order.RestoreOrder, which re-checks
// the decision invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	pickup, err := kernel.UUIDFromBytes(dto.PickupAddressID[:])
	if err != nil {
		return nil, err
	}
	delivery, err := kernel.UUIDFromBytes(dto.DeliveryAddressID[:])
	if err != nil {
		return nil, err
	}
	pincode, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	financials, err := order.NewFinancials(dto.Subtotal, dto.DeliveryFee, dto.Discount, dto.Tax)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		it, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, it)
	}

	var partnerID *kernel.UUID
	if dto.AssignedPartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.AssignedPartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	return order.RestoreOrder(order.State{
		ID:                id,
		CustomerID:        customerID,
		Addresses:         order.Addresses{Pickup: pickup, Delivery: delivery},
		Pincode:           pincode,
		Items:             items,
		Financials:        financials,
		Status:            status,
		PaymentStatus:     order.PaymentStatus(dto.PaymentStatus),
		AssignedPartner:   partnerID,
		PartnerAcceptedAt: utcPtr(dto.PartnerAcceptedAt),
		PartnerRejectedAt: utcPtr(dto.PartnerRejectedAt),
		RejectionReason:   dto.RejectionReason,
		CreatedAt:         dto.CreatedAt.UTC(),
		ConfirmedAt:       utcPtr(dto.ConfirmedAt),
		CompletedAt:       utcPtr(dto.CompletedAt),
		CancelledAt:       utcPtr(dto.CancelledAt),
		Version:           dto.Version,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return order.NewItem(id, dto.Garment, dto.Service, dto.Quantity)
}

func historyFromDomain(change order.StatusChange) StatusHistoryDTO {
	var partnerID *uuid.UUID
	if change.PartnerID != nil {
		raw := change.PartnerID.Bytes()
		partnerID = &raw
	}

	return StatusHistoryDTO{
		OrderID:    change.OrderID.Bytes(),
		PartnerID:  partnerID,
		FromStatus: change.From.String(),
		ToStatus:   change.To.String(),
		ActorID:    change.Actor.Bytes(),
		Notes:      change.Notes,
		ChangedAt:  change.ChangedAt,
	}
}

func historyToDomain(dto StatusHistoryDTO) (order.StatusChange, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusChange{}, err
	}
	actor, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.StatusChange{}, err
	}
	from, err := order.ParseStatus(dto.FromStatus)
	if err != nil {
		return order.StatusChange{}, err
	}
	to, err := order.ParseStatus(dto.ToStatus)
	if err != nil {
		return order.StatusChange{}, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		id, err := kernel.UUIDFromBytes(dto.PartnerID[:])
		if err != nil {
			return order.StatusChange{}, err
		}
		partnerID = &id
	}

	return order.StatusChange{
		OrderID:   orderID,
		PartnerID: partnerID,
		From:      from,
		To:        to,
		Actor:     actor,
		Notes:     dto.Notes,
		ChangedAt: dto.ChangedAt.UTC(),
	}, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
