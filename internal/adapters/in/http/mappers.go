package http

import (
	"errors"
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toRoute(stops []servers.Stop) ([]tour.Stop, error) {
	route := make([]tour.Stop, 0, len(stops))
	var problems []error
	for _, s := range stops {
		stop, err := tour.NewStop(s.Name, s.CollectionDate.Time)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		route = append(route, stop)
	}
	if err := errors.Join(problems...); err != nil {
		return nil, err
	}
	return route, nil
}

func toDetails(
	deliveryCity, deliveryAddress, recipientName, recipientPhone string,
	items *[]servers.SpecialItem,
	contentTypes *[]string,
) (booking.Details, error) {
	var specialItems []booking.SpecialItem
	if items != nil {
		for _, it := range *items {
			item, err := booking.NewSpecialItem(it.Name, it.Quantity)
			if err != nil {
				return booking.Details{}, err
			}
			specialItems = append(specialItems, item)
		}
	}

	var labels []string
	if contentTypes != nil {
		labels = *contentTypes
	}

	return booking.NewDetails(deliveryCity, deliveryAddress, recipientName, recipientPhone, specialItems, labels)
}

func toTourView(resp queries.GetTourQueryResponse) servers.Tour {
	route := make([]servers.Stop, 0, len(resp.Route))
	for _, s := range resp.Route {
		// stored dates are always DateOnly
		day, _ := time.Parse(time.DateOnly, s.CollectionDate)
		route = append(route, servers.Stop{Name: s.Name, CollectionDate: openapi_types.Date{Time: day}})
	}

	counts := make(map[string]int, len(resp.BookingCounts))
	for st, n := range resp.BookingCounts {
		counts[st.String()] = n
	}

	return servers.Tour{
		BookingCounts:      counts,
		CarrierId:          resp.CarrierID.Bytes(),
		CollectionDate:     openapi_types.Date{Time: resp.CollectionDate},
		DepartureDate:      openapi_types.Date{Time: resp.DepartureDate},
		DestinationCountry: resp.DestinationCountry,
		Id:                 resp.ID,
		OriginCountry:      resp.OriginCountry,
		RemainingCapacity:  resp.RemainingCapacity,
		Route:              route,
		Status:             resp.Status.String(),
		StatusColor:        resp.StatusColor,
		StatusLabel:        resp.StatusLabel,
		TotalCapacity:      resp.TotalCapacity,
		Type:               resp.Type.String(),
	}
}

func toBookingView(b *booking.Booking) servers.Booking {
	details := b.Details()

	items := make([]servers.SpecialItem, 0, len(details.SpecialItems()))
	for _, it := range details.SpecialItems() {
		items = append(items, servers.SpecialItem{Name: it.Name(), Quantity: it.Quantity()})
	}

	contentTypes := details.ContentTypes()
	if contentTypes == nil {
		contentTypes = []string{}
	}

	presentation := b.Status().Presentation()
	return servers.Booking{
		ClientId:        b.ClientID().Bytes(),
		ContentTypes:    contentTypes,
		CreatedAt:       b.CreatedAt(),
		DeliveryAddress: details.DeliveryAddress(),
		DeliveryCity:    details.DeliveryCity(),
		Id:              b.ID().Bytes(),
		PickupCity:      b.PickupCity(),
		RecipientName:   details.RecipientName(),
		RecipientPhone:  details.RecipientPhone(),
		SpecialItems:    items,
		Status:          b.Status().String(),
		StatusColor:     presentation.Color,
		StatusLabel:     presentation.Label,
		TourId:          b.TourID(),
		TrackingNumber:  b.TrackingNumber().String(),
		UpdatedAt:       b.UpdatedAt(),
		Weight:          b.Weight(),
	}
}

func toBookingRowView(row queries.BookingRow) servers.BookingRow {
	return servers.BookingRow{
		ClientId:       row.ClientID.Bytes(),
		CreatedAt:      row.CreatedAt,
		DeliveryCity:   row.DeliveryCity,
		Id:             row.ID.Bytes(),
		PickupCity:     row.PickupCity,
		RecipientName:  row.RecipientName,
		Status:         row.Status.String(),
		StatusColor:    row.StatusColor,
		StatusLabel:    row.StatusLabel,
		TrackingNumber: row.TrackingNumber,
		Weight:         row.Weight,
	}
}

func toApprovalView(r *approval.Request) servers.ApprovalRequest {
	return servers.ApprovalRequest{
		ClientId:  r.ClientID().Bytes(),
		CreatedAt: r.CreatedAt(),
		DecidedAt: r.DecidedAt(),
		Id:        r.ID().Bytes(),
		Message:   r.Message(),
		Status:    r.Status().String(),
		TourId:    r.TourID(),
	}
}
