package tour

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// Stop is a named collection point on a tour route, visited on CollectionDate.
type Stop struct {
	name           string
	collectionDate time.Time
	isConstructed  bool
}

// NewStop trims the name and truncates the date to a calendar day.
func NewStop(name string, collectionDate time.Time) (Stop, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Stop{}, errs.NewValueIsRequiredError("stop name")
	}
	if collectionDate.IsZero() {
		return Stop{}, errs.NewValueIsRequiredError("stop collection date")
	}
	return Stop{name: name, collectionDate: kernel.Day(collectionDate), isConstructed: true}, nil
}

func (s Stop) Name() string {
	return s.name
}

func (s Stop) CollectionDate() time.Time {
	return s.collectionDate
}

// Matches compares a city name to the stop name ignoring case and surrounding spaces.
func (s Stop) Matches(city string) bool {
	return strings.EqualFold(s.name, strings.TrimSpace(city))
}

func (s Stop) Validate() error {
	if !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

// validateRoute checks an ordered route against the departure day.
func validateRoute(route []Stop, departure time.Time) error {
	if len(route) == 0 {
		return errs.NewValueIsRequiredError("route")
	}

	seen := make(map[string]struct{}, len(route))
	var problems []error
	for i, stop := range route {
		if err := stop.Validate(); err != nil {
			problems = append(problems, err)
			continue
		}
		key := strings.ToLower(stop.name)
		if _, dup := seen[key]; dup {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"route", fmt.Errorf("stop %q appears more than once", stop.name)))
		}
		seen[key] = struct{}{}
		if stop.collectionDate.After(departure) {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"route", fmt.Errorf("stop %d (%s) is collected after departure", i+1, stop.name)))
		}
	}
	return errors.Join(problems...)
}
