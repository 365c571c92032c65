package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// ErrOrderIsNotInProcessing is returned for item updates on orders that are not
// picked up, in progress or ready.
var ErrOrderIsNotInProcessing = errs.NewValueIsInvalidErrorWithCause(
	"order_status", errors.New("order is not in processing"),
)

// UpdateItemStatusCommandHandler applies plant updates to item processing
// records, creating the record on the first update of an order line.
type UpdateItemStatusCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpdateItemStatusCommandHandler(uowFactory UoWFactory) UpdateItemStatusCommandHandler {
	return UpdateItemStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the order and then the item record. The order lock keeps item
// updates from racing with the order leaving processing.
func (h UpdateItemStatusCommandHandler) Handle(ctx context.Context, cmd UpdateItemStatusCommand) (*item.Processing, error) {
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

	if _, ok := o.Item(cmd.OrderItemID()); !ok {
		return nil, errs.NewObjectNotFoundError("order_item", cmd.OrderItemID().String())
	}

	if !inProcessing(o.Status()) {
		return nil, ErrOrderIsNotInProcessing
	}

	itemRepo := uow.ItemProcessingRepository()

	record, err := itemRepo.GetByOrderItemForUpdate(ctx, cmd.OrderItemID())
	created := false
	if errors.Is(err, errs.ErrObjectNotFound) {
		record, err = item.NewProcessing(kernel.NewUUID(), o.ID(), cmd.OrderItemID())
		created = true
	}
	if err != nil {
		return nil, err
	}

	if err = record.Apply(cmd.Update(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if created {
		err = itemRepo.Add(ctx, record)
	} else {
		err = itemRepo.Update(ctx, record)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}

func inProcessing(s order.Status) bool {
	return s == order.PickedUp || s == order.InProgress || s == order.Ready
}
