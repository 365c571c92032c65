package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	pending ──> confirmed ──> picked_up ──> in_progress ──> ready ──> out_for_delivery ──> delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> cancelled (guarded: only from pending or confirmed)
//
// delivered and cancelled are terminal.
type Status int

const (
	// Unknown (0) catches uninitialised values.
	Unknown Status = iota
	Pending
	Confirmed
	PickedUp
	InProgress
	Ready
	OutForDelivery
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		PickedUp:       "picked_up",
		InProgress:     "in_progress",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// allowedTransitions is the generic transition table. Cancellation is further
// restricted by CanCancel.
func allowedTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no outgoing transitions
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {PickedUp, Cancelled},
		PickedUp:       {InProgress, Cancelled},
		InProgress:     {Ready},
		Ready:          {OutForDelivery},
		OutForDelivery: {Delivered},
		Delivered:      {},
		Cancelled:      {},
	}
}

// AllowedTransitions returns the statuses reachable from s according to the
// generic table. The result is a fresh slice.
func AllowedTransitions(s Status) []Status {
	next := allowedTransitions()[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// ParseStatus converts the wire name of a status.
func ParseStatus(raw string) (Status, error) {
	for s, name := range getStatusStrings() {
		if s != Unknown && name == raw {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid order status", raw))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanCancel is the explicit cancellation rule: once garments are picked up the
// order can no longer be cancelled, even though the generic table lists
// picked_up -> cancelled.
func (s Status) CanCancel() bool {
	return s == Pending || s == Confirmed
}

// CanTransitionTo checks the generic table and the cancellation rule.
func (s Status) CanTransitionTo(next Status) bool {
	if next == Cancelled && !s.CanCancel() {
		return false
	}
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the move is legal and an
// errs.InvalidTransitionError otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if next == Cancelled && !s.CanCancel() {
		return Unknown, errs.NewInvalidTransitionErrorWithReason(
			"order", s.String(), next.String(), "cancellation is only allowed from pending or confirmed",
		)
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewInvalidTransitionError("order", s.String(), next.String())
	}
	return next, nil
}

// PaymentStatus mirrors the payment collaborator's view of the order.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment_status", fmt.Errorf("%q is not a valid payment status", p))
	}
}
