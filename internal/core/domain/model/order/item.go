package order

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Item is one garment line of an order, e.g. "3 x shirt, wash and iron".
type Item struct {
	id       kernel.UUID
	garment  string
	service  string
	quantity int
}

// NewItem validates a garment line.
func NewItem(id kernel.UUID, garment, service string, quantity int) (*Item, error) {
	item := &Item{}
	if err := errors.Join(
		id.Validate(),
		item.setGarment(garment),
		item.setService(service),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}
	item.id = id
	return item, nil
}

func (i *Item) ID() kernel.UUID { return i.id }
func (i *Item) Garment() string { return i.garment }
func (i *Item) Service() string { return i.service }
func (i *Item) Quantity() int   { return i.quantity }

func (i *Item) setGarment(garment string) error {
	garment = strings.TrimSpace(garment)
	if garment == "" {
		return errs.NewValueIsRequiredError("garment")
	}
	i.garment = garment
	return nil
}

func (i *Item) setService(service string) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errs.NewValueIsRequiredError("service")
	}
	i.service = service
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
