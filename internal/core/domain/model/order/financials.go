package order

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Financials holds the monetary totals of an order. Pricing happens upstream;
// the order only checks the amounts and derives Total.
type Financials struct {
	subtotal    decimal.Decimal
	deliveryFee decimal.Decimal
	discount    decimal.Decimal
	tax         decimal.Decimal
	total       decimal.Decimal
}

// NewFinancials validates the components and computes
// total = subtotal + deliveryFee + tax - discount.
func NewFinancials(subtotal, deliveryFee, discount, tax decimal.Decimal) (Financials, error) {
	if err := errors.Join(
		nonNegative("subtotal", subtotal),
		nonNegative("delivery_fee", deliveryFee),
		nonNegative("discount", discount),
		nonNegative("tax", tax),
	); err != nil {
		return Financials{}, err
	}

	total := subtotal.Add(deliveryFee).Add(tax).Sub(discount)
	if total.IsNegative() {
		return Financials{}, errs.NewValueIsInvalidErrorWithCause(
			"discount",
			fmt.Errorf("discount %s exceeds the order amount", discount.StringFixed(2)),
		)
	}

	return Financials{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		discount:    discount,
		tax:         tax,
		total:       total,
	}, nil
}

func (f Financials) Subtotal() decimal.Decimal    { return f.subtotal }
func (f Financials) DeliveryFee() decimal.Decimal { return f.deliveryFee }
func (f Financials) Discount() decimal.Decimal    { return f.discount }
func (f Financials) Tax() decimal.Decimal         { return f.tax }
func (f Financials) Total() decimal.Decimal       { return f.total }

func nonNegative(name string, v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", v.String()))
	}
	return nil
}
