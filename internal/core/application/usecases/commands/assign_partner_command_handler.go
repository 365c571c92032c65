package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/stage"
	"laundry/internal/core/domain/services"
)

// AssignPartnerCommandHandler assigns an explicitly chosen partner. The order
// stays pending until the partner accepts, so the partner's load is untouched.
type AssignPartnerCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.PartnerAllocator
}

func NewAssignPartnerCommandHandler(uowFactory UoWFactory) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewPartnerAllocator(),
	}
}

// Handle locks the order and then the partner, checks eligibility and records
// an assigned stage.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) (*order.Order, error) {
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

	if err = o.ValidateAssign(cmd.PartnerID()); err != nil {
		return nil, err
	}

	p, err := uow.PartnerRepository().GetForUpdate(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	if err = h.allocator.AssignTo(o, p); err != nil {
		return nil, err
	}

	if err = recordAssignmentStage(ctx, uow, o.ID(), stage.Assigned, cmd.Actor(), ""); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// recordAssignmentStage appends one of the assignment category stages to the
// order's timeline. Those stages never carry photos and are complete at once.
func recordAssignmentStage(
	ctx context.Context,
	uow StageRepoFactory,
	orderID kernel.UUID,
	s stage.Stage,
	actor kernel.UUID,
	notes string,
) error {
	now := time.Now().UTC()

	ps, err := stage.NewProcessingStage(kernel.NewUUID(), orderID, stage.Report{
		Stage:       s,
		PerformedBy: actor,
		Notes:       notes,
	}, now)
	if err != nil {
		return err
	}
	ps.Complete(now)

	return uow.StageRepository().Add(ctx, ps)
}
