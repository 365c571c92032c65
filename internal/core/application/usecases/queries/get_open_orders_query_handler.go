package queries

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves orders still moving through the
// pipeline. Delivered and cancelled orders are excluded.
//
// Example:
//
//	handler := NewGetOpenOrdersQueryHandler(db)
//	open, err := handler.Handle(ctx, NewGetOpenOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to get open orders: %v", err)
//	    return err
//	}
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle returns open orders sorted by creation time, then id.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			pincode,
			status,
			assigned_partner_id,
			created_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, order.Delivered.String(), order.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenOrdersQueryResponse
		var id, customerID uuid.UUID
		var partnerID uuid.NullUUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&resp.Pincode,
			&resp.Status,
			&partnerID,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernelID(id); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernelID(customerID); err != nil {
			return nil, err
		}
		if resp.AssignedPartnerID, err = kernelNullID(partnerID); err != nil {
			return nil, err
		}
		resp.CreatedAt = createdAt.UTC()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
