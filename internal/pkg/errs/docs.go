// Package errs provides the typed errors shared by the shipping service.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrCapacityExceeded) usable with errors.Is
//   - a struct carrying the details of the failure
//   - New...Error / New...ErrorWithCause constructors
//   - Error() for the message and Unwrap() returning the sentinel
//
// The sentinels double as the error kinds surfaced to callers:
//   - ErrObjectNotFound: a referenced tour, booking or approval request is missing
//   - ErrValueIsInvalid, ErrValueIsRequired, ErrValueIsOutOfRange: input validation
//   - ErrCapacityExceeded: a reservation asked for more weight than remains
//   - ErrInvalidTransition: a status change not permitted from the current state
//   - ErrStaleState: a conditional write lost a race with a concurrent change
//   - ErrForbidden: the actor does not own the tour or booking it acts on
//
// Adapters map the sentinels to transport codes; the core never swallows them.
package errs
