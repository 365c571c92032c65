package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAssignPartnerCommandIsNotConstructed = errors.New(
	"AssignPartnerCommand must be created via NewAssignPartnerCommand constructor",
)

// AssignPartnerCommand hands a pending order to a partner chosen by an operator.
//
// Example:
//
//	cmd, err := NewAssignPartnerCommand(orderID, partnerID, operatorID)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type AssignPartnerCommand struct {
	orderID   kernel.UUID
	partnerID kernel.UUID
	actor     kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignPartnerCommand(orderID, partnerID, actor kernel.UUID) (AssignPartnerCommand, error) {
	if err := errors.Join(orderID.Validate(), partnerID.Validate(), actor.Validate()); err != nil {
		return AssignPartnerCommand{}, err
	}

	return AssignPartnerCommand{
		orderID:   orderID,
		partnerID: partnerID,
		actor:     actor,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAssignPartnerCommandIsNotConstructed)
}

func (c AssignPartnerCommand) OrderID() kernel.UUID   { return c.orderID }
func (c AssignPartnerCommand) PartnerID() kernel.UUID { return c.partnerID }
func (c AssignPartnerCommand) Actor() kernel.UUID     { return c.actor }
