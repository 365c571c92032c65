package commands

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/partner"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrChangePartnerStatusCommandIsNotConstructed = errors.New(
	"ChangePartnerStatusCommand must be created via NewChangePartnerStatusCommand constructor",
)

// ChangePartnerStatusCommand is an operator decision on a partner's lifecycle:
// verify (active), suspend, deactivate (inactive) or reject.
type ChangePartnerStatusCommand struct {
	partnerID kernel.UUID
	target    partner.Status

	guard guard.ConstructorGuard
}

func NewChangePartnerStatusCommand(partnerID kernel.UUID, target partner.Status) (ChangePartnerStatusCommand, error) {
	if err := errors.Join(partnerID.Validate(), target.Validate()); err != nil {
		return ChangePartnerStatusCommand{}, err
	}
	if target == partner.Pending {
		return ChangePartnerStatusCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("partners cannot be moved back to %s", target),
		)
	}

	return ChangePartnerStatusCommand{
		partnerID: partnerID,
		target:    target,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangePartnerStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePartnerStatusCommandIsNotConstructed)
}

func (c ChangePartnerStatusCommand) PartnerID() kernel.UUID { return c.partnerID }
func (c ChangePartnerStatusCommand) Target() partner.Status { return c.target }
