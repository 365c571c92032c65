package queries

import (
	"context"
	"time"

	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRow struct {
	ID                uuid.UUID
	CustomerID        uuid.UUID
	PickupAddressID   uuid.UUID
	DeliveryAddressID uuid.UUID
	Pincode           string
	Status            string
	PaymentStatus     string
	Subtotal          decimal.Decimal
	DeliveryFee       decimal.Decimal
	Discount          decimal.Decimal
	Tax               decimal.Decimal
	Total             decimal.Decimal
	AssignedPartnerID uuid.NullUUID
	PartnerAcceptedAt *time.Time
	PartnerRejectedAt *time.Time
	RejectionReason   string
	CreatedAt         time.Time
	ConfirmedAt       *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
	Version           int
}

type orderItemRow struct {
	ID       uuid.UUID
	Garment  string
	Service  string
	Quantity int
}

type historyRow struct {
	FromStatus string
	ToStatus   string
	ActorID    uuid.UUID
	Notes      string
	ChangedAt  time.Time
}

// GetOrderQueryHandler assembles the order read model from the orders,
// order_items and order_status_history tables.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns an errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	orderID := query.OrderID()

	var rows []orderRow
	err := db.Raw(`
		SELECT
			id, customer_id, pickup_address_id, delivery_address_id, pincode,
			status, payment_status,
			subtotal, delivery_fee, discount, tax, total,
			assigned_partner_id, partner_accepted_at, partner_rejected_at, rejection_reason,
			created_at, confirmed_at, completed_at, cancelled_at, version
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Scan(&rows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", orderID)
	}

	resp, err := orderResponse(rows[0])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var items []orderItemRow
	err = db.Raw(`
		SELECT id, garment, service, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Scan(&items).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Items = make([]OrderItemView, 0, len(items))
	for _, it := range items {
		id, idErr := kernelID(it.ID)
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.Items = append(resp.Items, OrderItemView{
			ID:       id,
			Garment:  it.Garment,
			Service:  it.Service,
			Quantity: it.Quantity,
		})
	}

	var history []historyRow
	err = db.Raw(`
		SELECT from_status, to_status, actor_id, notes, changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, seq
	`, orderID.Bytes()).Scan(&history).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.History = make([]StatusChangeView, 0, len(history))
	for _, hr := range history {
		actor, idErr := kernelID(hr.ActorID)
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.History = append(resp.History, StatusChangeView{
			From:      hr.FromStatus,
			To:        hr.ToStatus,
			ActorID:   actor,
			Notes:     hr.Notes,
			ChangedAt: hr.ChangedAt.UTC(),
		})
	}

	return resp, nil
}

func orderResponse(row orderRow) (GetOrderQueryResponse, error) {
	id, err := kernelID(row.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	customerID, err := kernelID(row.CustomerID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	pickupID, err := kernelID(row.PickupAddressID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	deliveryID, err := kernelID(row.DeliveryAddressID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	partnerID, err := kernelNullID(row.AssignedPartnerID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:                id,
		CustomerID:        customerID,
		PickupAddressID:   pickupID,
		DeliveryAddressID: deliveryID,
		Pincode:           row.Pincode,
		Status:            row.Status,
		PaymentStatus:     row.PaymentStatus,
		Subtotal:          row.Subtotal,
		DeliveryFee:       row.DeliveryFee,
		Discount:          row.Discount,
		Tax:               row.Tax,
		Total:             row.Total,
		AssignedPartnerID: partnerID,
		PartnerAcceptedAt: utcPtr(row.PartnerAcceptedAt),
		PartnerRejectedAt: utcPtr(row.PartnerRejectedAt),
		RejectionReason:   row.RejectionReason,
		CreatedAt:         row.CreatedAt.UTC(),
		ConfirmedAt:       utcPtr(row.ConfirmedAt),
		CompletedAt:       utcPtr(row.CompletedAt),
		CancelledAt:       utcPtr(row.CancelledAt),
		Version:           row.Version,
	}, nil
}
