package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrRegisterPartnerCommandIsNotConstructed = errors.New(
	"RegisterPartnerCommand must be created via NewRegisterPartnerCommand constructor",
)

// RegisterPartnerCommand represents a request to onboard a laundry business.
// The partner starts pending and unverified; an operator verifies it later.
//
// Example:
//
//	pincode, _ := kernel.NewPincode("560001")
//	cmd, err := NewRegisterPartnerCommand("Fresh Fold", "BLR-EAST", 25, []kernel.Pincode{pincode})
//	if err != nil {
//	    return fmt.Errorf("invalid partner data: %w", err)
//	}
//
//	p, err := handler.Handle(ctx, cmd)
type RegisterPartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID     kernel.UUID
	businessName  string
	zone          string
	dailyCapacity int
	serviceAreas  []kernel.Pincode

	guard guard.ConstructorGuard
}

// NewRegisterPartnerCommand generates the partner id and validates the input.
func NewRegisterPartnerCommand(
	businessName string,
	zone string,
	dailyCapacity int,
	serviceAreas []kernel.Pincode,
) (RegisterPartnerCommand, error) {
	command := RegisterPartnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setPartnerID(kernel.NewUUID()),
		command.setBusinessName(businessName),
		command.setZone(zone),
		command.setDailyCapacity(dailyCapacity),
		command.setServiceAreas(serviceAreas),
	); err != nil {
		return RegisterPartnerCommand{}, err
	}

	return command, nil
}

func (c RegisterPartnerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterPartnerCommandIsNotConstructed)
}

func (c RegisterPartnerCommand) PartnerID() kernel.UUID { return c.partnerID }
func (c RegisterPartnerCommand) BusinessName() string   { return c.businessName }
func (c RegisterPartnerCommand) Zone() string           { return c.zone }
func (c RegisterPartnerCommand) DailyCapacity() int     { return c.dailyCapacity }

func (c RegisterPartnerCommand) ServiceAreas() []kernel.Pincode {
	out := make([]kernel.Pincode, len(c.serviceAreas))
	copy(out, c.serviceAreas)
	return out
}

func (c *RegisterPartnerCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.partnerID = id
	return nil
}

func (c *RegisterPartnerCommand) setBusinessName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return partner.ErrBusinessNameIsRequired
	}
	c.businessName = name
	return nil
}

func (c *RegisterPartnerCommand) setZone(zone string) error {
	zone = strings.TrimSpace(zone)
	if zone == "" {
		return partner.ErrZoneIsRequired
	}
	c.zone = zone
	return nil
}

func (c *RegisterPartnerCommand) setDailyCapacity(capacity int) error {
	if capacity <= 0 {
		return errs.NewValueIsOutOfRangeError("daily_capacity", capacity, 1, "unbounded")
	}
	c.dailyCapacity = capacity
	return nil
}

func (c *RegisterPartnerCommand) setServiceAreas(areas []kernel.Pincode) error {
	for _, area := range areas {
		if err := area.Validate(); err != nil {
			return err
		}
	}
	c.serviceAreas = make([]kernel.Pincode, len(areas))
	copy(c.serviceAreas, areas)
	return nil
}
