package order

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
)

// StatusChange is one immutable row of an order's status history.
// PartnerID is the partner assigned at the moment of the change, so a
// rejection still names the partner that rejected.
type StatusChange struct {
	OrderID   kernel.UUID
	PartnerID *kernel.UUID
	From      Status
	To        Status
	Actor     kernel.UUID
	Notes     string
	ChangedAt time.Time
}

// StatusChanged is raised for every applied status change and handed to
// subscribers only after the surrounding transaction commits.
type StatusChanged struct {
	OrderID    kernel.UUID
	CustomerID kernel.UUID
	PartnerID  *kernel.UUID
	From       Status
	To         Status
	Actor      kernel.UUID
	Notes      string
	OccurredAt time.Time
}
