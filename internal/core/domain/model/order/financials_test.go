package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFinancials(t *testing.T) {
	d := decimal.RequireFromString

	t.Run("should derive total", func(t *testing.T) {
		f, err := order.NewFinancials(d("499.50"), d("30"), d("50"), d("24.98"))

		require.NoError(t, err)
		assert.True(t, d("504.48").Equal(f.Total()), f.Total().String())
		assert.True(t, d("50").Equal(f.Discount()))
	})

	t.Run("should reject negative components", func(t *testing.T) {
		_, err := order.NewFinancials(d("-1"), d("0"), d("0"), d("-2"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "subtotal")
		assert.Contains(t, err.Error(), "tax")
	})

	t.Run("should reject discount above the order amount", func(t *testing.T) {
		_, err := order.NewFinancials(d("100"), d("0"), d("150"), d("0"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "discount")
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should trim names", func(t *testing.T) {
		it, err := order.NewItem(kernel.NewUUID(), " saree ", " dry_clean ", 1)

		require.NoError(t, err)
		assert.Equal(t, "saree", it.Garment())
		assert.Equal(t, "dry_clean", it.Service())
		assert.Equal(t, 1, it.Quantity())
	})

	t.Run("should reject empty lines", func(t *testing.T) {
		it, err := order.NewItem(kernel.UUID{}, "", "", 0)

		require.Error(t, err)
		assert.Nil(t, it)
		assert.Contains(t, err.Error(), "garment")
		assert.Contains(t, err.Error(), "service")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})
}
