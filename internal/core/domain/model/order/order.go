package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order that bypassed NewOrder/RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrAlreadyDecided is returned when the assigned partner has already accepted
	// or rejected the order.
	ErrAlreadyDecided = errors.New("partner decision already recorded")

	// ErrPartnerNotAssigned is returned by accept/reject on an order without a partner.
	ErrPartnerNotAssigned = errs.NewValueIsRequiredError("assigned_partner")

	// ErrReasonIsRequired is returned by Reject without a reason.
	ErrReasonIsRequired = errs.NewValueIsRequiredError("reason")

	// ErrInvalidTransition is the sentinel wrapped by every rejected status change.
	ErrInvalidTransition = errs.ErrInvalidTransition
)

// Addresses references the customer's pickup and delivery addresses, which are
// owned by the address book collaborator.
type Addresses struct {
	Pickup   kernel.UUID
	Delivery kernel.UUID
}

// Order is the aggregate root of the fulfillment workflow. It owns its items and
// its status history and enforces:
//   - status only changes through the transition table (see Status)
//   - confirmed_at and completed_at are written once
//   - partner_accepted_at and partner_rejected_at are never both set
//   - partner_accepted_at is never set without an assigned partner
type Order struct {
	id                kernel.UUID
	customerID        kernel.UUID
	addresses         Addresses
	pincode           kernel.Pincode
	items             []*Item
	financials        Financials
	status            Status
	paymentStatus     PaymentStatus
	assignedPartner   *kernel.UUID
	partnerAcceptedAt *time.Time
	partnerRejectedAt *time.Time
	rejectionReason   string
	createdAt         time.Time
	confirmedAt       *time.Time
	completedAt       *time.Time
	cancelledAt       *time.Time
	version           int

	// unsaved history rows and events not yet handed to subscribers
	newHistory []StatusChange
	events     []StatusChanged

	guard guard.ConstructorGuard
}

// NewOrder places a pending order without a partner.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	addresses Addresses,
	pincode kernel.Pincode,
	items []*Item,
	financials Financials,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		financials:    financials,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customerID),
		o.setAddresses(addresses),
		o.setPincode(pincode),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// State is the persisted shape of an order, used by RestoreOrder and Snapshot.
type State struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	Addresses         Addresses
	Pincode           kernel.Pincode
	Items             []*Item
	Financials        Financials
	Status            Status
	PaymentStatus     PaymentStatus
	AssignedPartner   *kernel.UUID
	PartnerAcceptedAt *time.Time
	PartnerRejectedAt *time.Time
	RejectionReason   string
	CreatedAt         time.Time
	ConfirmedAt       *time.Time
	CompletedAt       *time.Time
	CancelledAt       *time.Time
	Version           int
}

// RestoreOrder rebuilds an order loaded from storage and re-checks the
// cross-field invariants.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		financials:        s.Financials,
		assignedPartner:   s.AssignedPartner,
		partnerAcceptedAt: s.PartnerAcceptedAt,
		partnerRejectedAt: s.PartnerRejectedAt,
		rejectionReason:   s.RejectionReason,
		createdAt:         s.CreatedAt,
		confirmedAt:       s.ConfirmedAt,
		completedAt:       s.CompletedAt,
		cancelledAt:       s.CancelledAt,
		version:           s.Version,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomer(s.CustomerID),
		o.setAddresses(s.Addresses),
		o.setPincode(s.Pincode),
		o.setItems(s.Items),
		o.setStatus(s.Status),
		o.setPaymentStatus(s.PaymentStatus),
		o.checkDecision(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot returns the persisted shape of the order.
func (o *Order) Snapshot() State {
	return State{
		ID:                o.id,
		CustomerID:        o.customerID,
		Addresses:         o.addresses,
		Pincode:           o.pincode,
		Items:             o.Items(),
		Financials:        o.financials,
		Status:            o.status,
		PaymentStatus:     o.paymentStatus,
		AssignedPartner:   o.assignedPartner,
		PartnerAcceptedAt: o.partnerAcceptedAt,
		PartnerRejectedAt: o.partnerRejectedAt,
		RejectionReason:   o.rejectionReason,
		CreatedAt:         o.createdAt,
		ConfirmedAt:       o.confirmedAt,
		CompletedAt:       o.completedAt,
		CancelledAt:       o.cancelledAt,
		Version:           o.version,
	}
}

// Validate ensures the order was built through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID               { return o.id }
func (o *Order) CustomerID() kernel.UUID       { return o.customerID }
func (o *Order) Addresses() Addresses          { return o.addresses }
func (o *Order) Pincode() kernel.Pincode       { return o.pincode }
func (o *Order) Financials() Financials        { return o.financials }
func (o *Order) Status() Status                { return o.status }
func (o *Order) PaymentStatus() PaymentStatus  { return o.paymentStatus }
func (o *Order) AssignedPartner() *kernel.UUID { return o.assignedPartner }
func (o *Order) PartnerAcceptedAt() *time.Time { return o.partnerAcceptedAt }
func (o *Order) PartnerRejectedAt() *time.Time { return o.partnerRejectedAt }
func (o *Order) RejectionReason() string       { return o.rejectionReason }
func (o *Order) CreatedAt() time.Time          { return o.createdAt }
func (o *Order) ConfirmedAt() *time.Time       { return o.confirmedAt }
func (o *Order) CompletedAt() *time.Time       { return o.completedAt }
func (o *Order) CancelledAt() *time.Time       { return o.cancelledAt }
func (o *Order) Version() int                  { return o.version }

// Items returns a copy of the garment lines.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// Item looks up a garment line by id.
func (o *Order) Item(id kernel.UUID) (*Item, bool) {
	for _, it := range o.items {
		if it.id.IsEqual(id) {
			return it, true
		}
	}
	return nil, false
}

// IsDecided reports whether the assigned partner accepted or rejected the order.
func (o *Order) IsDecided() bool {
	return o.partnerAcceptedAt != nil || o.partnerRejectedAt != nil
}

// HoldsPartnerCapacity reports whether the order counts towards the current
// load of its partner: accepted and not yet delivered or cancelled.
func (o *Order) HoldsPartnerCapacity() bool {
	return o.partnerAcceptedAt != nil && o.assignedPartner != nil && !o.status.IsTerminal()
}

// Transition applies a status change requested by actor. It fails with an
// errs.InvalidTransitionError when the table or the cancellation rule forbid it.
func (o *Order) Transition(to Status, actor kernel.UUID, notes string, at time.Time) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(to)
	if err != nil {
		return err
	}

	o.apply(next, actor, notes, at)
	return nil
}

// ValidateAssign checks that partnerID may be assigned now.
func (o *Order) ValidateAssign(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if o.partnerAcceptedAt != nil {
		return ErrAlreadyDecided
	}
	if o.status != Pending {
		return errs.NewInvalidTransitionErrorWithReason(
			"order", o.status.String(), o.status.String(), "partners are only assigned to pending orders",
		)
	}
	return nil
}

// AssignPartner hands the order to a partner. The status stays pending until the
// partner accepts. Assigning after a rejection opens a new decision round.
func (o *Order) AssignPartner(partnerID kernel.UUID) error {
	if err := o.ValidateAssign(partnerID); err != nil {
		return err
	}

	o.assignedPartner = &partnerID
	o.partnerRejectedAt = nil
	o.rejectionReason = ""
	return nil
}

// ValidateDecision checks the accept/reject preconditions shared by both decisions.
func (o *Order) ValidateDecision() error {
	if o.IsDecided() {
		return ErrAlreadyDecided
	}
	if o.assignedPartner == nil {
		return ErrPartnerNotAssigned
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithReason(
			"order", o.status.String(), Confirmed.String(), "order is closed",
		)
	}
	return nil
}

// Accept records the partner's acceptance and confirms the order. The caller is
// responsible for charging the partner's capacity in the same unit of work.
func (o *Order) Accept(actor kernel.UUID, at time.Time) error {
	if err := o.ValidateDecision(); err != nil {
		return err
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	if o.status != Confirmed {
		next, err := o.status.TransitionTo(Confirmed)
		if err != nil {
			return err
		}
		o.apply(next, actor, "accepted by partner", at)
	}

	accepted := at
	o.partnerAcceptedAt = &accepted
	return nil
}

// Reject records the partner's refusal, clears the assignment and puts the order
// back into the assignment pool as pending.
func (o *Order) Reject(reason string, actor kernel.UUID, at time.Time) error {
	if err := o.ValidateDecision(); err != nil {
		return err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrReasonIsRequired
	}
	if err := actor.Validate(); err != nil {
		return err
	}

	if o.status != Pending {
		// Not part of the transition table: a rejection always reopens the order.
		o.apply(Pending, actor, "rejected by partner: "+reason, at)
	}

	rejected := at
	o.partnerRejectedAt = &rejected
	o.rejectionReason = reason
	o.assignedPartner = nil
	return nil
}

// MarkPayment records the payment collaborator's latest view.
func (o *Order) MarkPayment(status PaymentStatus) error {
	return o.setPaymentStatus(status)
}

// NewHistory returns status changes applied since the order was loaded.
func (o *Order) NewHistory() []StatusChange {
	out := make([]StatusChange, len(o.newHistory))
	copy(out, o.newHistory)
	return out
}

// MarkPersisted is called by the repository once history rows are stored and
// the version has been bumped.
func (o *Order) MarkPersisted(version int) {
	o.newHistory = nil
	o.version = version
}

// DomainEvents returns status changes not yet handed to subscribers.
func (o *Order) DomainEvents() []StatusChanged {
	out := make([]StatusChanged, len(o.events))
	copy(out, o.events)
	return out
}

// ClearDomainEvents drops events once they were emitted.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) apply(next Status, actor kernel.UUID, notes string, at time.Time) {
	prev := o.status
	o.status = next

	switch next {
	case Confirmed:
		if o.confirmedAt == nil {
			o.confirmedAt = &at
		}
	case Delivered:
		if o.completedAt == nil {
			o.completedAt = &at
		}
	case Cancelled:
		if o.cancelledAt == nil {
			o.cancelledAt = &at
		}
	case Unknown, Pending, PickedUp, InProgress, Ready, OutForDelivery:
	}

	var partner *kernel.UUID
	if o.assignedPartner != nil {
		p := *o.assignedPartner
		partner = &p
	}

	o.newHistory = append(o.newHistory, StatusChange{
		OrderID:   o.id,
		PartnerID: partner,
		From:      prev,
		To:        next,
		Actor:     actor,
		Notes:     notes,
		ChangedAt: at,
	})
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		CustomerID: o.customerID,
		PartnerID:  partner,
		From:       prev,
		To:         next,
		Actor:      actor,
		Notes:      notes,
		OccurredAt: at,
	})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setAddresses(a Addresses) error {
	if err := errors.Join(
		wrapRequired("pickup_address_id", a.Pickup.Validate()),
		wrapRequired("delivery_address_id", a.Delivery.Validate()),
	); err != nil {
		return err
	}
	o.addresses = a
	return nil
}

func (o *Order) setPincode(p kernel.Pincode) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.pincode = p
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for i, it := range items {
		if it == nil {
			return errs.NewValueIsInvalidErrorWithCause("items", fmt.Errorf("item %d is nil", i))
		}
	}
	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	o.status = s
	return nil
}

func (o *Order) setPaymentStatus(p PaymentStatus) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.paymentStatus = p
	return nil
}

func (o *Order) checkDecision() error {
	if o.partnerAcceptedAt != nil && o.partnerRejectedAt != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"partner_decision", errors.New("order cannot be both accepted and rejected"),
		)
	}
	if o.partnerAcceptedAt != nil && o.assignedPartner == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"partner_accepted_at", errors.New("accepted order has no assigned partner"),
		)
	}
	return nil
}

func wrapRequired(name string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(name, err)
}
