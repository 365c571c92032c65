package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrAddPartnerServiceAreaCommandIsNotConstructed = errors.New(
	"AddPartnerServiceAreaCommand must be created via NewAddPartnerServiceAreaCommand constructor",
)

// AddPartnerServiceAreaCommand represents a request to extend the postal codes
// a partner picks up from.
//
// Example:
//
//	pincode, _ := kernel.NewPincode("560034")
//	cmd, err := NewAddPartnerServiceAreaCommand(partnerID, pincode)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewAddPartnerServiceAreaCommandHandler(uowFactory)
//	if _, err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add service area: %w", err)
//	}
type AddPartnerServiceAreaCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	pincode   kernel.Pincode

	guard guard.ConstructorGuard
}

func NewAddPartnerServiceAreaCommand(
	partnerID kernel.UUID,
	pincode kernel.Pincode,
) (AddPartnerServiceAreaCommand, error) {
	command := AddPartnerServiceAreaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(partnerID),
		command.setPincode(pincode),
	); err != nil {
		return AddPartnerServiceAreaCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPartnerServiceAreaCommand) Validate() error {
	return c.guard.Validate(ErrAddPartnerServiceAreaCommandIsNotConstructed)
}

func (c AddPartnerServiceAreaCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

func (c AddPartnerServiceAreaCommand) Pincode() kernel.Pincode {
	return c.pincode
}

func (c *AddPartnerServiceAreaCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}

func (c *AddPartnerServiceAreaCommand) setPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return err
	}

	c.pincode = pincode
	return nil
}
