package tour

import (
	"fmt"
	"strings"

	"shipping/internal/pkg/errs"
)

// Type controls who may book: anyone on a public tour, approved clients on a private one.
type Type string

const (
	Public  Type = "public"
	Private Type = "private"
)

func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case Public, Private:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("tour type", fmt.Errorf("%q is not public or private", s))
	}
}

func (t Type) String() string {
	return string(t)
}
