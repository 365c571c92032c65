package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/stage"
)

// RejectOrderCommandHandler puts an order back into the assignment pool. The
// partner's load is not touched since it was never charged.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
	emitter    EventEmitter
}

func NewRejectOrderCommandHandler(uowFactory UoWFactory, emitter EventEmitter) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		emitter:    emitter,
	}
}

func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (*order.Order, error) {
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

	if err = o.Reject(cmd.Reason(), cmd.Actor(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = recordAssignmentStage(ctx, uow, o.ID(), stage.Rejected, cmd.Actor(), cmd.Reason()); err != nil {
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
