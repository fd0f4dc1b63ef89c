// Package booking models a client's reservation of space on a tour.
//
// Status holds the booking state machine as a single table of Rules: who may
// request each transition (carrier, client or a tour cascade), in which tour
// stages, and what it does to the tour's capacity (release on cancel,
// reserve on reinstate). Every status consumer reads labels and colors from
// Status.Presentation.
package booking
