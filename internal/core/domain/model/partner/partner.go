package partner

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

const (
	minRating = 0.0
	maxRating = 5.0
)

// Domain errors for partner operations.
var (
	// ErrBusinessNameIsRequired is returned when registering a partner without a name.
	ErrBusinessNameIsRequired = errs.NewValueIsRequiredError("business_name")
	// ErrZoneIsRequired is returned when registering a partner without a zone code.
	ErrZoneIsRequired = errs.NewValueIsRequiredError("zone")
	// ErrPartnerIsNotConstructed is returned when using an improperly initialized Partner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner constructor")
	// ErrCapacityExceeded is returned by TakeOrder when current load already equals daily capacity.
	ErrCapacityExceeded = errors.New("partner capacity exceeded")
)

// Partner is a laundry business fulfilling orders. It is the aggregate root of the
// capacity ledger: every accepted, still open order counts once towards currentLoad.
//
// Business rules:
//   - daily capacity is positive and 0 <= current load <= daily capacity
//   - only active, verified partners serving the pincode with spare capacity are eligible
//   - verification activates the partner; suspension, deactivation and rejection take it out of rotation
//   - average rating stays within 0..5
type Partner struct {
	id            kernel.UUID
	businessName  string
	status        Status
	isVerified    bool
	dailyCapacity int
	currentLoad   int
	zone          string
	serviceAreas  []*ServiceArea
	averageRating float64
	verifiedAt    *time.Time
	createdAt     time.Time
	guard         guard.ConstructorGuard
}

// NewPartner registers a pending, unverified partner with no load.
//
//	p, err := partner.NewPartner(kernel.NewUUID(), "Fresh Fold", "BLR-EAST", 20, time.Now())
func NewPartner(id kernel.UUID, businessName, zone string, dailyCapacity int, createdAt time.Time) (*Partner, error) {
	p := &Partner{
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setBusinessName(businessName),
		p.setZone(zone),
		p.setDailyCapacity(dailyCapacity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// State is the persisted shape of a partner.
type State struct {
	ID            kernel.UUID
	BusinessName  string
	Status        Status
	IsVerified    bool
	DailyCapacity int
	CurrentLoad   int
	Zone          string
	ServiceAreas  []*ServiceArea
	AverageRating float64
	VerifiedAt    *time.Time
	CreatedAt     time.Time
}

// RestorePartner reconstructs a partner loaded from storage, re-checking the
// capacity and rating invariants.
func RestorePartner(s State) (*Partner, error) {
	p := &Partner{
		isVerified: s.IsVerified,
		verifiedAt: s.VerifiedAt,
		createdAt:  s.CreatedAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(s.ID),
		p.setBusinessName(s.BusinessName),
		p.setZone(s.Zone),
		p.setStatus(s.Status),
		p.setDailyCapacity(s.DailyCapacity),
		p.setServiceAreas(s.ServiceAreas),
		p.SetAverageRating(s.AverageRating),
	); err != nil {
		return nil, err
	}
	if err := p.setCurrentLoad(s.CurrentLoad); err != nil {
		return nil, err
	}

	return p, nil
}

// Snapshot returns the persisted shape of the partner.
func (p *Partner) Snapshot() State {
	return State{
		ID:            p.id,
		BusinessName:  p.businessName,
		Status:        p.status,
		IsVerified:    p.isVerified,
		DailyCapacity: p.dailyCapacity,
		CurrentLoad:   p.currentLoad,
		Zone:          p.zone,
		ServiceAreas:  p.ServiceAreas(),
		AverageRating: p.averageRating,
		VerifiedAt:    p.verifiedAt,
		CreatedAt:     p.createdAt,
	}
}

func (p *Partner) IsEqual(other *Partner) bool {
	if other == nil {
		return false
	}
	return p.id.IsEqual(other.id)
}

// Validate checks that the partner was built by NewPartner or RestorePartner.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

func (p *Partner) ID() kernel.UUID        { return p.id }
func (p *Partner) BusinessName() string   { return p.businessName }
func (p *Partner) Status() Status         { return p.status }
func (p *Partner) IsVerified() bool       { return p.isVerified }
func (p *Partner) DailyCapacity() int     { return p.dailyCapacity }
func (p *Partner) CurrentLoad() int       { return p.currentLoad }
func (p *Partner) Zone() string           { return p.zone }
func (p *Partner) AverageRating() float64 { return p.averageRating }
func (p *Partner) VerifiedAt() *time.Time { return p.verifiedAt }
func (p *Partner) CreatedAt() time.Time   { return p.createdAt }

// ServiceAreas returns a copy of the served postal codes.
func (p *Partner) ServiceAreas() []*ServiceArea {
	out := make([]*ServiceArea, len(p.serviceAreas))
	copy(out, p.serviceAreas)
	return out
}

// FreeCapacity is the number of orders the partner can still accept today.
func (p *Partner) FreeCapacity() int {
	return p.dailyCapacity - p.currentLoad
}

// Serves reports whether pincode is one of the partner's service areas.
func (p *Partner) Serves(pincode kernel.Pincode) bool {
	for _, area := range p.serviceAreas {
		if area.Covers(pincode) {
			return true
		}
	}
	return false
}

// IsEligibleFor reports whether the partner may be offered an order picked up at pincode.
func (p *Partner) IsEligibleFor(pincode kernel.Pincode) bool {
	return p.status == Active &&
		p.isVerified &&
		p.currentLoad < p.dailyCapacity &&
		p.Serves(pincode)
}

// AddServiceArea starts serving pincode. Adding an already served pincode is a no-op.
func (p *Partner) AddServiceArea(pincode kernel.Pincode) error {
	if p.Serves(pincode) {
		return nil
	}

	area, err := NewServiceArea(kernel.NewUUID(), pincode)
	if err != nil {
		return err
	}

	p.serviceAreas = append(p.serviceAreas, area)
	return nil
}

// RemoveServiceArea stops serving pincode. Orders already assigned are not affected.
func (p *Partner) RemoveServiceArea(pincode kernel.Pincode) error {
	for i, area := range p.serviceAreas {
		if area.Covers(pincode) {
			p.serviceAreas = append(p.serviceAreas[:i], p.serviceAreas[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("service_area", pincode.String())
}

// TakeOrder charges one unit of capacity for an accepted order. It fails with
// ErrCapacityExceeded when the partner is already full.
func (p *Partner) TakeOrder() error {
	if p.currentLoad >= p.dailyCapacity {
		return ErrCapacityExceeded
	}
	p.currentLoad++
	return nil
}

// ReleaseOrder returns one unit of capacity once an accepted order is delivered
// or cancelled.
func (p *Partner) ReleaseOrder() error {
	if p.currentLoad == 0 {
		return errs.NewValueIsOutOfRangeError("current_load", -1, 0, p.dailyCapacity)
	}
	p.currentLoad--
	return nil
}

// Verify marks the partner as verified and puts it into rotation. The first
// verification time is kept.
func (p *Partner) Verify(at time.Time) error {
	if p.status == Active && p.isVerified {
		return nil
	}
	p.isVerified = true
	p.status = Active
	if p.verifiedAt == nil {
		p.verifiedAt = &at
	}
	return nil
}

// Suspend takes an active or pending partner out of rotation.
func (p *Partner) Suspend() error {
	return p.moveTo(Suspended, Active, Pending)
}

// Deactivate marks an active partner as paused by its own decision.
func (p *Partner) Deactivate() error {
	return p.moveTo(Inactive, Active)
}

// Reject closes a pending registration.
func (p *Partner) Reject() error {
	if err := p.moveTo(Rejected, Pending); err != nil {
		return err
	}
	p.isVerified = false
	return nil
}

// SetAverageRating stores the rating computed by the review collaborator.
func (p *Partner) SetAverageRating(rating float64) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("average_rating", rating, minRating, maxRating)
	}
	p.averageRating = rating
	return nil
}

// SetDailyCapacity changes the daily capacity; it cannot drop below the current load.
func (p *Partner) SetDailyCapacity(capacity int) error {
	if capacity < p.currentLoad {
		return errs.NewValueIsOutOfRangeError("daily_capacity", capacity, p.currentLoad, "unbounded")
	}
	return p.setDailyCapacity(capacity)
}

func (p *Partner) moveTo(next Status, from ...Status) error {
	if p.status == next {
		return nil
	}
	for _, allowed := range from {
		if p.status == allowed {
			p.status = next
			return nil
		}
	}
	return errs.NewInvalidTransitionError("partner", p.status.String(), next.String())
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setBusinessName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBusinessNameIsRequired
	}
	p.businessName = name
	return nil
}

func (p *Partner) setZone(zone string) error {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		return ErrZoneIsRequired
	}
	p.zone = strings.ToUpper(zone)
	return nil
}

func (p *Partner) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	p.status = s
	return nil
}

func (p *Partner) setDailyCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsOutOfRangeError("daily_capacity", capacity, 1, "unbounded")
	}
	p.dailyCapacity = capacity
	return nil
}

func (p *Partner) setCurrentLoad(load int) error {
	if load < 0 || load > p.dailyCapacity {
		return errs.NewValueIsOutOfRangeError("current_load", load, 0, p.dailyCapacity)
	}
	p.currentLoad = load
	return nil
}

func (p *Partner) setServiceAreas(areas []*ServiceArea) error {
	for _, area := range areas {
		if err := area.Validate(); err != nil {
			return err
		}
	}
	p.serviceAreas = make([]*ServiceArea, len(areas))
	copy(p.serviceAreas, areas)
	return nil
}
