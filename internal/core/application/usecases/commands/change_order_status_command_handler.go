package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// ChangeOrderStatusCommandHandler applies a status transition and returns the
// partner's capacity when an accepted order is delivered or cancelled.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	emitter    EventEmitter
	allocator  services.PartnerAllocator
}

func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, emitter EventEmitter) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
		allocator:  services.NewPartnerAllocator(),
	}
}

// Handle runs the transition under a row lock on the order (and on the partner
// when capacity is released). Subscribers are notified after commit.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
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

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	held := o.HoldsPartnerCapacity()
	if err = o.Transition(cmd.Status(), cmd.Actor(), cmd.Notes(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = releaseCapacity(ctx, uow, h.allocator, held, o); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.emitter.Emit(ctx, uow.DomainEvents()...)
	return o, nil
}

// releaseCapacity decrements the assigned partner's load when the order just
// stopped holding it. The partner row is locked after the order row.
func releaseCapacity(
	ctx context.Context,
	uow UoW,
	allocator services.PartnerAllocator,
	heldBefore bool,
	o *order.Order,
) error {
	if !heldBefore || o.HoldsPartnerCapacity() {
		return nil
	}

	partnerRepo := uow.PartnerRepository()
	p, err := partnerRepo.GetForUpdate(ctx, *o.AssignedPartner())
	if err != nil {
		return err
	}

	if _, err = allocator.Release(heldBefore, o, p); err != nil {
		return err
	}

	return partnerRepo.Update(ctx, p)
}
