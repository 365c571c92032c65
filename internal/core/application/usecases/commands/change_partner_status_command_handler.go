package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/partner"
)

// ChangePartnerStatusCommandHandler applies operator lifecycle decisions.
// Orders already accepted by the partner keep their capacity charge.
type ChangePartnerStatusCommandHandler struct {
	uowFactory PartnerUoWFactory
}

func NewChangePartnerStatusCommandHandler(uowFactory PartnerUoWFactory) ChangePartnerStatusCommandHandler {
	return ChangePartnerStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ChangePartnerStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangePartnerStatusCommand,
) (*partner.Partner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()

	p, err := partnerRepo.GetForUpdate(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	switch cmd.Target() {
	case partner.Active:
		err = p.Verify(time.Now().UTC())
	case partner.Suspended:
		err = p.Suspend()
	case partner.Inactive:
		err = p.Deactivate()
	case partner.Rejected:
		err = p.Reject()
	case partner.Unknown, partner.Pending:
		err = cmd.Target().Validate()
	}
	if err != nil {
		return nil, err
	}

	if err = partnerRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
