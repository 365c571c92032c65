package commands

import (
	"context"

	"laundry/internal/core/domain/model/partner"
)

// AddPartnerServiceAreaCommandHandler extends a partner's service areas.
// Adding a postal code the partner already serves succeeds without changes.
type AddPartnerServiceAreaCommandHandler struct {
	uowFactory PartnerUoWFactory
}

func NewAddPartnerServiceAreaCommandHandler(uowFactory PartnerUoWFactory) AddPartnerServiceAreaCommandHandler {
	return AddPartnerServiceAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle retrieves the partner under a row lock, adds the area and persists
// the change within a single transaction.
func (h AddPartnerServiceAreaCommandHandler) Handle(
	ctx context.Context,
	cmd AddPartnerServiceAreaCommand,
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

	if p.Serves(cmd.Pincode()) {
		return p, nil
	}

	if err = p.AddServiceArea(cmd.Pincode()); err != nil {
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
