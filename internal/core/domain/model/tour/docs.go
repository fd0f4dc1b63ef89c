// Package tour models a carrier's scheduled cross-border run.
//
// The package includes:
//   - Tour: the aggregate root holding route, schedule, status and capacity
//   - Status: the tour state machine (planned -> collecting -> in_transit -> completed, or cancelled)
//   - Schedule and Stop: value objects for the dates and the ordered route
//   - Type: public or private (private tours require an approved request to book)
//
// The capacity ledger lives on Tour (Reserve, Release, Resize): the remaining
// capacity must always equal the total minus the weight of every
// non-cancelled booking, never below zero and never above the total.
package tour
