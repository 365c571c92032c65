package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for partner aggregates
// and their service areas.
type PartnerRepository interface {
	Add(ctx context.Context, aggregate *partner.Partner) error

	// Update persists changes, including added and removed service areas.
	Update(ctx context.Context, aggregate *partner.Partner) error

	Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// GetForUpdate retrieves a partner under a row lock. Callers that also lock
	// an order must lock the order first.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error)

	// FindEligible returns active, verified partners serving pincode with spare
	// capacity, ranked by load ascending then rating descending.
	FindEligible(ctx context.Context, pincode kernel.Pincode) ([]*partner.Partner, error)
}
