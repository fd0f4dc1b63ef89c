// Package queries contains the read side: stateless projections over the
// tours and bookings tables, executed as plain SQL.
package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrListTourBookingsQueryIsNotConstructed = errors.New(
	"ListTourBookingsQuery must be created via NewListTourBookingsQuery constructor",
)

// FilterAll disables a filter. An empty value does the same.
const FilterAll = "all"

// BookingSort is a sortable booking column.
type BookingSort string

const (
	SortByCreatedAt    BookingSort = "created_at"
	SortByDeliveryCity BookingSort = "delivery_city"
)

// SortOrder is the direction of a listing.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

// ListTourBookingsQuery lists the bookings of one tour, optionally filtered
// by delivery city (exact match) and status.
//
// Example:
//
//	query, err := NewListTourBookingsQuery(7, "Algiers", "pending", "delivery_city", "")
//	if err != nil {
//	    return err
//	}
//	rows, err := handler.Handle(ctx, query)
type ListTourBookingsQuery struct {
	tourID       int64
	deliveryCity string
	status       booking.Status
	sort         BookingSort
	order        SortOrder

	guard guard.ConstructorGuard
}

// NewListTourBookingsQuery parses the raw listing parameters. city and status
// accept "all" or "" for no filter. sort defaults to created_at; order
// defaults to desc for created_at and asc for delivery_city.
func NewListTourBookingsQuery(tourID int64, city, status, sort, order string) (ListTourBookingsQuery, error) {
	q := ListTourBookingsQuery{tourID: tourID, guard: guard.NewConstructorGuard()}

	var problems []error
	if tourID <= 0 {
		problems = append(problems, errs.NewValueIsOutOfRangeError("tour id", tourID, 1, "max int64"))
	}

	if city = strings.TrimSpace(city); !isAll(city) {
		q.deliveryCity = city
	}

	if !isAll(status) {
		st, err := booking.ParseStatus(status)
		if err != nil {
			problems = append(problems, err)
		}
		q.status = st
	}

	switch s := BookingSort(strings.ToLower(strings.TrimSpace(sort))); s {
	case "", SortByCreatedAt:
		q.sort = SortByCreatedAt
	case SortByDeliveryCity:
		q.sort = SortByDeliveryCity
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("sort", fmt.Errorf("%q is not sortable", sort)))
	}

	switch o := SortOrder(strings.ToLower(strings.TrimSpace(order))); o {
	case "":
		q.order = Descending
		if q.sort == SortByDeliveryCity {
			q.order = Ascending
		}
	case Ascending, Descending:
		q.order = o
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause("order", fmt.Errorf("%q is not asc or desc", order)))
	}

	if err := errors.Join(problems...); err != nil {
		return ListTourBookingsQuery{}, err
	}
	return q, nil
}

func (q ListTourBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListTourBookingsQueryIsNotConstructed)
}

func (q ListTourBookingsQuery) TourID() int64 {
	return q.tourID
}

// DeliveryCity is the city filter, empty for all cities.
func (q ListTourBookingsQuery) DeliveryCity() string {
	return q.deliveryCity
}

// Status is the status filter, booking.Unknown for all statuses.
func (q ListTourBookingsQuery) Status() booking.Status {
	return q.status
}

func (q ListTourBookingsQuery) Sort() BookingSort {
	return q.sort
}

func (q ListTourBookingsQuery) Order() SortOrder {
	return q.order
}

// BookingRow is one listed booking with the presentation of its status.
type BookingRow struct {
	ID             kernel.UUID
	ClientID       kernel.UUID
	TrackingNumber string
	Status         booking.Status
	StatusLabel    string
	StatusColor    string
	Weight         int
	PickupCity     string
	DeliveryCity   string
	RecipientName  string
	CreatedAt      time.Time
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, FilterAll)
}
