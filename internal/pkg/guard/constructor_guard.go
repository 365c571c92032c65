// Package guard provides the constructor guard embedded by commands, queries and
// aggregates to tell constructed values apart from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. The zero value is
// "not constructed", so a struct literal that skips the constructor fails Validate.
//
//	type RejectOrderCommand struct {
//	    reason string
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c RejectOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the
// guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
