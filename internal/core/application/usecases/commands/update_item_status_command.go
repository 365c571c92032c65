package commands

import (
	"errors"

	"laundry/internal/core/domain/model/item"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrUpdateItemStatusCommandIsNotConstructed = errors.New(
	"UpdateItemStatusCommand must be created via NewUpdateItemStatusCommand constructor",
)

// UpdateItemStatusCommand carries a plant update for one garment line of an order.
type UpdateItemStatusCommand struct {
	orderID     kernel.UUID
	orderItemID kernel.UUID
	update      item.Update

	guard guard.ConstructorGuard
}

func NewUpdateItemStatusCommand(
	orderID kernel.UUID,
	orderItemID kernel.UUID,
	update item.Update,
) (UpdateItemStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		orderItemID.Validate(),
		update.Status.Validate(),
		update.ProcessedBy.Validate(),
	); err != nil {
		return UpdateItemStatusCommand{}, err
	}

	return UpdateItemStatusCommand{
		orderID:     orderID,
		orderItemID: orderItemID,
		update:      update,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateItemStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemStatusCommandIsNotConstructed)
}

func (c UpdateItemStatusCommand) OrderID() kernel.UUID     { return c.orderID }
func (c UpdateItemStatusCommand) OrderItemID() kernel.UUID { return c.orderItemID }
func (c UpdateItemStatusCommand) Update() item.Update      { return c.update }
