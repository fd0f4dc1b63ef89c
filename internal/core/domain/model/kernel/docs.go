// Package kernel holds the primitives shared by every aggregate of the
// shipping domain:
//   - UUID: identifier of bookings, approval requests and users
//   - Actor: the authenticated caller (user id + marketplace role)
//   - Day: a calendar date without time of day, used for tour schedules
package kernel
