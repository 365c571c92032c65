package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand records the assigned partner's acceptance of an order.
type AcceptOrderCommand struct {
	orderID kernel.UUID
	actor   kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptOrderCommand(orderID, actor kernel.UUID) (AcceptOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c AcceptOrderCommand) Actor() kernel.UUID   { return c.actor }
