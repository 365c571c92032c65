package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

var (
	ErrNoEligiblePartnerFound = errors.New("no eligible partner found")
	ErrNoOrderFound           = errors.New("no order found")
)

// AutoAssignPartnerCommandHandler matches pending orders with partners. It is
// run periodically by the auto-assign job.
//
// Example:
//
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoOrderFound):
//	    log.Println("No unassigned orders")
//	case errors.Is(err, ErrNoEligiblePartnerFound):
//	    log.Println("No partner serves the pincode")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	default:
//	    log.Printf("Order %s assigned to %s", o.ID(), o.AssignedPartner())
//	}
type AutoAssignPartnerCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.PartnerAllocator
}

func NewAutoAssignPartnerCommandHandler(uowFactory UoWFactory) AutoAssignPartnerCommandHandler {
	return AutoAssignPartnerCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewPartnerAllocator(),
	}
}

// Handle locks the oldest unassigned order, ranks the eligible partners for
// its pincode and assigns the first one. The partner row is only read: load
// changes when the partner accepts.
func (h AutoAssignPartnerCommandHandler) Handle(ctx context.Context, cmd AutoAssignPartnerCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	partnerRepo := uow.PartnerRepository()

	o, err := orderRepo.GetFirstUnassigned(ctx, time.Now().UTC().Add(-cmd.Cooldown()))
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, ErrNoOrderFound
	}
	if err != nil {
		return nil, err
	}

	partners, err := partnerRepo.FindEligible(ctx, o.Pincode())
	if err != nil {
		return nil, err
	}

	if _, err = h.allocator.Assign(o, partners); err != nil {
		if errors.Is(err, services.ErrPartnerNotFound) {
			return nil, ErrNoEligiblePartnerFound
		}
		return nil, err
	}

	if err = recordAssignmentStage(ctx, uow, o.ID(), stage.Assigned, cmd.Actor(), "auto assignment"); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
