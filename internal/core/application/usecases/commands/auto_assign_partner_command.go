package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrAutoAssignPartnerCommandIsNotConstructed = errors.New(
	"AutoAssignPartnerCommand must be created via NewAutoAssignPartnerCommand constructor",
)

// AutoAssignPartnerCommand triggers the assignment of the best ranked partner
// to the oldest unassigned pending order. Orders rejected less than cooldown
// ago are left in the pool for the next run.
//
// Example:
//
//	cmd, _ := NewAutoAssignPartnerCommand(kernel.SystemActor(), 5*time.Second)
//	handler := NewAutoAssignPartnerCommandHandler(uowFactory)
//	_, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoOrderFound) {
//	    // nothing to do this tick
//	}
type AutoAssignPartnerCommand struct {
	actor    kernel.UUID
	cooldown time.Duration

	guard guard.ConstructorGuard
}

func NewAutoAssignPartnerCommand(actor kernel.UUID, cooldown time.Duration) (AutoAssignPartnerCommand, error) {
	if err := actor.Validate(); err != nil {
		return AutoAssignPartnerCommand{}, err
	}
	if cooldown < 0 {
		return AutoAssignPartnerCommand{}, errs.NewValueIsOutOfRangeError("cooldown", cooldown, 0, "unbounded")
	}

	return AutoAssignPartnerCommand{
		actor:    actor,
		cooldown: cooldown,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AutoAssignPartnerCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignPartnerCommandIsNotConstructed)
}

func (c AutoAssignPartnerCommand) Actor() kernel.UUID      { return c.actor }
func (c AutoAssignPartnerCommand) Cooldown() time.Duration { return c.cooldown }
