package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand records the assigned partner's refusal of an order.
type RejectOrderCommand struct {
	orderID kernel.UUID
	reason  string
	actor   kernel.UUID

	guard guard.ConstructorGuard
}

func NewRejectOrderCommand(orderID kernel.UUID, reason string, actor kernel.UUID) (RejectOrderCommand, error) {
	reason = strings.TrimSpace(reason)

	var reasonErr error
	if reason == "" {
		reasonErr = order.ErrReasonIsRequired
	}

	if err := errors.Join(orderID.Validate(), reasonErr, actor.Validate()); err != nil {
		return RejectOrderCommand{}, err
	}

	return RejectOrderCommand{
		orderID: orderID,
		reason:  reason,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c RejectOrderCommand) Reason() string       { return c.reason }
func (c RejectOrderCommand) Actor() kernel.UUID   { return c.actor }
