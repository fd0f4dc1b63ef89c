// Package guard provides ConstructorGuard, a marker embedded in commands and
// queries to tell values built by their constructor from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when no specific error is given.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is false-valued until NewConstructorGuard sets it.
//
//	type CancelBookingCommand struct {
//	    bookingID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c CancelBookingCommand) Validate() error {
//	    return c.guard.Validate(ErrCancelBookingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
