package partner

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

// ErrServiceAreaIsNotConstructed is returned for a ServiceArea that bypassed NewServiceArea.
var ErrServiceAreaIsNotConstructed = errors.New("ServiceArea must be created via NewServiceArea constructor")

// ServiceArea is one postal code a partner picks up from and delivers to.
// It belongs to exactly one partner and is identified by its own id so the
// repository can diff the collection on save.
type ServiceArea struct {
	id      kernel.UUID
	pincode kernel.Pincode
	guard   guard.ConstructorGuard
}

// NewServiceArea builds a service area entry. Both arguments are required.
func NewServiceArea(id kernel.UUID, pincode kernel.Pincode) (*ServiceArea, error) {
	if err := errors.Join(id.Validate(), pincode.Validate()); err != nil {
		return nil, err
	}

	return &ServiceArea{
		id:      id,
		pincode: pincode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (a *ServiceArea) ID() kernel.UUID         { return a.id }
func (a *ServiceArea) Pincode() kernel.Pincode { return a.pincode }

// Covers reports whether the area matches pincode.
func (a *ServiceArea) Covers(pincode kernel.Pincode) bool {
	return a.pincode.IsEqual(pincode)
}

func (a *ServiceArea) Validate() error {
	if a == nil {
		return ErrServiceAreaIsNotConstructed
	}
	return a.guard.Validate(ErrServiceAreaIsNotConstructed)
}
