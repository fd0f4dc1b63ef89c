// Package services holds the domain services that coordinate the tour,
// booking and approval aggregates.
//
// The package includes:
//   - CascadeCoordinator: applies tour transitions and plans the bulk booking cascade
//   - BookingLifecycle: booking creation, status actions and edits with their capacity effects
//   - ApprovalGate: approval requests for private tours
//
// Services mutate aggregates in memory only. Callers persist every touched
// aggregate in one unit of work, so a failure leaves no partial state.
package services
