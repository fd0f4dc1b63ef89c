// Package approval models the gate in front of private tours: a client asks,
// the tour's carrier approves or rejects, and only a client whose latest
// request is approved may book.
package approval
