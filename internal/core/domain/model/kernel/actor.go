package kernel

import (
	"errors"
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role is the marketplace role of the caller.
type Role string

const (
	RoleCarrier Role = "carrier"
	RoleClient  Role = "client"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a role claim into a Role, ignoring case and surrounding spaces.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCarrier, RoleClient, RoleAdmin:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Actor is the authenticated caller of a state-machine operation. It is
// passed explicitly into every command so authorization is a checked
// precondition of the domain, not an assumption of the transport.
type Actor struct {
	id            UUID
	role          Role
	isConstructed bool
}

// NewActor validates the identity and role of a caller.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if _, err := ParseRole(string(role)); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role, isConstructed: true}, nil
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Is reports whether the actor is the user identified by id.
func (a Actor) Is(id UUID) bool {
	return a.id.IsEqual(id)
}

func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

func (a Actor) String() string {
	return fmt.Sprintf("%s:%s", a.role, a.id)
}
