package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreateOrderInput(t *testing.T) (order.Addresses, []*order.Item, order.Financials) {
	t.Helper()
	line, err := order.NewItem(kernel.NewUUID(), "saree", "dry_clean", 1)
	require.NoError(t, err)
	financials, err := order.NewFinancials(decimal.NewFromInt(450), decimal.NewFromInt(30), decimal.NewFromInt(50), decimal.NewFromInt(20))
	require.NoError(t, err)

	return order.Addresses{Pickup: kernel.NewUUID(), Delivery: kernel.NewUUID()}, []*order.Item{line}, financials
}

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should build a command from valid input", func(t *testing.T) {
		addresses, items, financials := newCreateOrderInput(t)
		orderID, customerID := kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(orderID, customerID, addresses, mustPincode(t), items, financials)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, customerID, cmd.CustomerID())
		assert.Equal(t, addresses, cmd.Addresses())
		assert.Equal(t, servedPincode, cmd.Pincode().String())
		assert.Len(t, cmd.Items(), 1)
		assert.True(t, decimal.NewFromInt(450).Equal(cmd.Financials().Total()))
	})

	t.Run("should require at least one item", func(t *testing.T) {
		addresses, _, financials := newCreateOrderInput(t)

		_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), addresses, mustPincode(t), nil, financials)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero identifiers and pincode", func(t *testing.T) {
		addresses, items, financials := newCreateOrderInput(t)

		_, err := commands.NewCreateOrderCommand(kernel.UUID{}, kernel.UUID{}, addresses, kernel.Pincode{}, items, financials)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		cmd := commands.CreateOrderCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
