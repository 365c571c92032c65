package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/partner"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailablePartnersQueryHandler ranks partners straight from the partner
// tables. The ordering matches services.PartnerAllocator.Rank: load ascending,
// then rating descending, then id.
//
// Example:
//
//	handler := NewGetAvailablePartnersQueryHandler(db)
//	partners, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
type GetAvailablePartnersQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailablePartnersQueryHandler(db *gorm.DB) GetAvailablePartnersQueryHandler {
	return GetAvailablePartnersQueryHandler{db: db}
}

func (h GetAvailablePartnersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailablePartnersQuery,
) ([]GetAvailablePartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	partners := make([]GetAvailablePartnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.business_name,
			p.zone,
			p.daily_capacity,
			p.current_load,
			p.average_rating
		FROM partners p
		JOIN partner_service_areas a ON a.partner_id = p.id
		WHERE a.pincode = ?
			AND p.status = ?
			AND p.is_verified = ?
			AND p.current_load < p.daily_capacity
		ORDER BY p.current_load ASC, p.average_rating DESC, p.id ASC
	`, query.Pincode().String(), partner.Active.String(), true).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailablePartnersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.BusinessName,
			&resp.Zone,
			&resp.DailyCapacity,
			&resp.CurrentLoad,
			&resp.AverageRating,
		)
		if err != nil {
			return nil, err
		}

		partnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = partnerID
		partners = append(partners, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
