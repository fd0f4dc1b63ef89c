package tour

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var ErrScheduleIsNotConstructed = errors.New("Schedule must be created via NewSchedule constructor")

// Schedule is the cross-border leg of a tour: the two countries and the
// collection and departure days, with collection never after departure.
type Schedule struct {
	originCountry      string
	destinationCountry string
	collectionDate     time.Time
	departureDate      time.Time
	isConstructed      bool
}

func NewSchedule(originCountry, destinationCountry string, collectionDate, departureDate time.Time) (Schedule, error) {
	s := Schedule{
		originCountry:      strings.TrimSpace(originCountry),
		destinationCountry: strings.TrimSpace(destinationCountry),
		collectionDate:     kernel.Day(collectionDate),
		departureDate:      kernel.Day(departureDate),
		isConstructed:      true,
	}

	var problems []error
	if s.originCountry == "" {
		problems = append(problems, errs.NewValueIsRequiredError("origin country"))
	}
	if s.destinationCountry == "" {
		problems = append(problems, errs.NewValueIsRequiredError("destination country"))
	}
	if collectionDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("collection date"))
	}
	if departureDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("departure date"))
	}
	if len(problems) == 0 && s.collectionDate.After(s.departureDate) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("collection date",
			fmt.Errorf("%s is after departure %s",
				s.collectionDate.Format(time.DateOnly), s.departureDate.Format(time.DateOnly))))
	}
	if err := errors.Join(problems...); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

func (s Schedule) OriginCountry() string {
	return s.originCountry
}

func (s Schedule) DestinationCountry() string {
	return s.destinationCountry
}

func (s Schedule) CollectionDate() time.Time {
	return s.collectionDate
}

func (s Schedule) DepartureDate() time.Time {
	return s.departureDate
}

func (s Schedule) Validate() error {
	if !s.isConstructed {
		return ErrScheduleIsNotConstructed
	}
	return nil
}
