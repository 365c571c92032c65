// Package errs provides the typed error kinds shared by the domain, the use cases
// and the adapters.
//
// Each kind pairs a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrInvalidTransition) with a struct
// carrying the offending parameter. The struct unwraps to its sentinel so callers
// branch with errors.Is, and the HTTP adapter maps the sentinels to response codes.
package errs
