package services

import (
	"errors"
	"sort"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/partner"
)

var (
	// ErrPartnerNotFound is returned when no eligible partner serves the order's pincode.
	ErrPartnerNotFound = errors.New("no eligible partner found")

	// ErrPartnerNotEligible is returned when an explicitly chosen partner cannot take the order.
	ErrPartnerNotEligible = errors.New("partner is not eligible for this order")

	// ErrPartnerMismatch is returned when the partner deciding is not the one assigned.
	ErrPartnerMismatch = errors.New("partner is not assigned to this order")
)

// PartnerAllocator is a domain service coordinating the Order and Partner
// aggregates during assignment, acceptance and release of capacity.
//
// Ranking rules:
//   - only active, verified partners serving the pincode with spare capacity qualify
//   - lower current load first, then higher average rating, then id
//
// The allocator holds no state. Callers load both aggregates with row locks
// (order first, then partner) and persist them in one unit of work.
//
// Example usage:
//
//	allocator := services.NewPartnerAllocator()
//	chosen, err := allocator.Assign(o, candidates)
//	if errors.Is(err, services.ErrPartnerNotFound) {
//	    // leave the order in the pool
//	}
type PartnerAllocator struct{}

func NewPartnerAllocator() PartnerAllocator {
	return PartnerAllocator{}
}

// Rank returns the partners eligible for pincode in assignment order. The input
// slice is not modified.
func (PartnerAllocator) Rank(pincode kernel.Pincode, partners []*partner.Partner) []*partner.Partner {
	eligible := make([]*partner.Partner, 0, len(partners))
	for _, p := range partners {
		if p.Validate() == nil && p.IsEligibleFor(pincode) {
			eligible = append(eligible, p)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if a.CurrentLoad() != b.CurrentLoad() {
			return a.CurrentLoad() < b.CurrentLoad()
		}
		if a.AverageRating() != b.AverageRating() {
			return a.AverageRating() > b.AverageRating()
		}
		return a.ID().String() < b.ID().String()
	})

	return eligible
}

// Assign picks the top ranked partner for the order and assigns it. The order
// stays pending until the partner accepts.
func (a PartnerAllocator) Assign(o *order.Order, partners []*partner.Partner) (*partner.Partner, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	ranked := a.Rank(o.Pincode(), partners)
	if len(ranked) == 0 {
		return nil, ErrPartnerNotFound
	}

	best := ranked[0]
	if err := o.AssignPartner(best.ID()); err != nil {
		return nil, err
	}
	return best, nil
}

// AssignTo assigns a partner chosen by an operator after checking eligibility.
func (PartnerAllocator) AssignTo(o *order.Order, p *partner.Partner) error {
	if err := errors.Join(o.Validate(), p.Validate()); err != nil {
		return err
	}
	if err := o.ValidateAssign(p.ID()); err != nil {
		return err
	}
	if !p.IsEligibleFor(o.Pincode()) {
		return ErrPartnerNotEligible
	}
	return o.AssignPartner(p.ID())
}

// Accept charges the partner's capacity and confirms the order. Neither
// aggregate changes when an error is returned.
func (PartnerAllocator) Accept(o *order.Order, p *partner.Partner, actor kernel.UUID, at time.Time) error {
	if err := errors.Join(o.Validate(), p.Validate()); err != nil {
		return err
	}
	if err := o.ValidateDecision(); err != nil {
		return err
	}
	if !o.AssignedPartner().IsEqual(p.ID()) {
		return ErrPartnerMismatch
	}

	if err := p.TakeOrder(); err != nil {
		return err
	}
	if err := o.Accept(actor, at); err != nil {
		// keep the ledger consistent with the order
		_ = p.ReleaseOrder()
		return err
	}
	return nil
}

// Release gives back the capacity held by an order that stopped counting
// towards its partner's load. heldBefore is HoldsPartnerCapacity captured
// before the order changed.
func (PartnerAllocator) Release(heldBefore bool, o *order.Order, p *partner.Partner) (bool, error) {
	if !heldBefore || o.HoldsPartnerCapacity() {
		return false, nil
	}
	if err := p.ReleaseOrder(); err != nil {
		return false, err
	}
	return true, nil
}
