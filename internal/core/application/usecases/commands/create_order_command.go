package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new laundry order. Items and financials arrive
// already priced from the checkout collaborator.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, addresses, pincode, items, financials)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	orderID    kernel.UUID
	customerID kernel.UUID
	addresses  order.Addresses
	pincode    kernel.Pincode
	items      []*order.Item
	financials order.Financials

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	addresses order.Addresses,
	pincode kernel.Pincode,
	items []*order.Item,
	financials order.Financials,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		pincode.Validate(),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	if len(items) == 0 {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("items")
	}

	return CreateOrderCommand{
		orderID:    orderID,
		customerID: customerID,
		addresses:  addresses,
		pincode:    pincode,
		items:      items,
		financials: financials,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID         { return c.orderID }
func (c CreateOrderCommand) CustomerID() kernel.UUID      { return c.customerID }
func (c CreateOrderCommand) Addresses() order.Addresses   { return c.addresses }
func (c CreateOrderCommand) Pincode() kernel.Pincode      { return c.pincode }
func (c CreateOrderCommand) Items() []*order.Item         { return c.items }
func (c CreateOrderCommand) Financials() order.Financials { return c.financials }
