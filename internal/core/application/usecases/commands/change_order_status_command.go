package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ErrDeliveryNeedsProof is the cause attached when delivered is requested as a
// manual status. Delivery is recorded as a delivered stage with a proof photo.
var ErrDeliveryNeedsProof = errors.New("delivered is reached by recording the delivered stage with a proof photo")

// ChangeOrderStatusCommand requests a manual status transition, e.g. a support
// agent cancelling an order or an operator confirming it.
type ChangeOrderStatusCommand struct {
	orderID kernel.UUID
	status  order.Status
	actor   kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	actor kernel.UUID,
	notes string,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate(), actor.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if status == order.Delivered {
		return ChangeOrderStatusCommand{}, errs.NewValueIsInvalidErrorWithCause("status", ErrDeliveryNeedsProof)
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		status:  status,
		actor:   actor,
		notes:   strings.TrimSpace(notes),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }
func (c ChangeOrderStatusCommand) Actor() kernel.UUID   { return c.actor }
func (c ChangeOrderStatusCommand) Notes() string        { return c.notes }
