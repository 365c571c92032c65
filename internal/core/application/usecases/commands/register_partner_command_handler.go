package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/partner"
)

// RegisterPartnerCommandHandler creates a pending partner with its initial
// service areas.
type RegisterPartnerCommandHandler struct {
	uowFactory PartnerUoWFactory
}

func NewRegisterPartnerCommandHandler(uowFactory PartnerUoWFactory) RegisterPartnerCommandHandler {
	return RegisterPartnerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RegisterPartnerCommandHandler) Handle(ctx context.Context, cmd RegisterPartnerCommand) (*partner.Partner, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := partner.NewPartner(
		cmd.PartnerID(),
		cmd.BusinessName(),
		cmd.Zone(),
		cmd.DailyCapacity(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	for _, pincode := range cmd.ServiceAreas() {
		if err = p.AddServiceArea(pincode); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartnerRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
