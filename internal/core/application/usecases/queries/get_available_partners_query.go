// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the tables directly and return read models shaped for the API.
package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetAvailablePartnersQueryIsNotConstructed = errors.New(
		"GetAvailablePartnersQuery must be created via NewGetAvailablePartnersQuery constructor",
	)
)

// GetAvailablePartnersQuery lists partners that can take a new order in a
// pincode, best candidate first.
//
// Example:
//
//	pincode, _ := kernel.NewPincode("560034")
//	query, err := NewGetAvailablePartnersQuery(pincode)
//	if err != nil {
//	    return err
//	}
//
//	partners, err := handler.Handle(ctx, query)
//	if len(partners) > 0 {
//	    fmt.Printf("best candidate: %s\n", partners[0].BusinessName)
//	}
type GetAvailablePartnersQuery struct {
	pincode kernel.Pincode

	guard guard.ConstructorGuard
}

func NewGetAvailablePartnersQuery(pincode kernel.Pincode) (GetAvailablePartnersQuery, error) {
	if err := pincode.Validate(); err != nil {
		return GetAvailablePartnersQuery{}, err
	}
	return GetAvailablePartnersQuery{pincode: pincode, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailablePartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePartnersQueryIsNotConstructed)
}

func (q GetAvailablePartnersQuery) Pincode() kernel.Pincode { return q.pincode }

// GetAvailablePartnersQueryResponse is one ranked candidate.
type GetAvailablePartnersQueryResponse struct {
	ID            kernel.UUID
	BusinessName  string
	Zone          string
	DailyCapacity int
	CurrentLoad   int
	AverageRating float64
}

// SpareCapacity is the number of orders the partner can still accept today.
func (r GetAvailablePartnersQueryResponse) SpareCapacity() int {
	return r.DailyCapacity - r.CurrentLoad
}
