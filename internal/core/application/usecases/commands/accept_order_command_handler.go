package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/core/domain/services"
)

// AcceptOrderCommandHandler confirms an order on behalf of its assigned partner
// and charges one unit of the partner's daily capacity.
//
// Two concurrent accepts of the same order serialize on the order row lock; the
// second one sees the acceptance timestamp and fails with order.ErrAlreadyDecided.
//
// Example:
//
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAlreadyDecided):
//	    // 409 already_decided
//	case errors.Is(err, partner.ErrCapacityExceeded):
//	    // 409 capacity_exceeded
//	}
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	emitter    EventEmitter
	allocator  services.PartnerAllocator
}

func NewAcceptOrderCommandHandler(uowFactory UoWFactory, emitter EventEmitter) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
		allocator:  services.NewPartnerAllocator(),
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ValidateDecision(); err != nil {
		return nil, err
	}

	p, err := partnerRepo.GetForUpdate(ctx, *o.AssignedPartner())
	if err != nil {
		return nil, err
	}

	if err = h.allocator.Accept(o, p, cmd.Actor(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = recordAssignmentStage(ctx, uow, o.ID(), stage.Accepted, cmd.Actor(), ""); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = partnerRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.emitter.Emit(ctx, uow.DomainEvents()...)
	return o, nil
}
