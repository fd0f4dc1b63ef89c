package queries

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GetTourQueryHandler struct {
	db *gorm.DB
}

func NewGetTourQueryHandler(db *gorm.DB) GetTourQueryHandler {
	return GetTourQueryHandler{db: db}
}

type tourRow struct {
	ID                 int64
	CarrierID          uuid.UUID
	Type               string
	Status             string
	OriginCountry      string
	DestinationCountry string
	CollectionDate     datatypes.Date
	DepartureDate      datatypes.Date
	Route              datatypes.JSONSlice[RouteStop]
	TotalCapacity      int
	RemainingCapacity  int
}

type statusCount struct {
	Status string
	Count  int
}

func (h GetTourQueryHandler) Handle(ctx context.Context, query GetTourQuery) (GetTourQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTourQueryResponse{}, err
	}

	var rows []tourRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			carrier_id,
			type,
			status,
			origin_country,
			destination_country,
			collection_date,
			departure_date,
			route,
			total_capacity,
			remaining_capacity
		FROM tours
		WHERE id = ?
	`, query.TourID()).Scan(&rows).Error
	if err != nil {
		return GetTourQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetTourQueryResponse{}, errs.NewObjectNotFoundError("tour", query.TourID())
	}
	row := rows[0]

	resp, err := toTourResponse(row)
	if err != nil {
		return GetTourQueryResponse{}, err
	}

	var counts []statusCount
	err = h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count
		FROM bookings
		WHERE tour_id = ?
		GROUP BY status
	`, query.TourID()).Scan(&counts).Error
	if err != nil {
		return GetTourQueryResponse{}, err
	}

	resp.BookingCounts = make(map[booking.Status]int, len(booking.Statuses()))
	for _, st := range booking.Statuses() {
		resp.BookingCounts[st] = 0
	}
	for _, c := range counts {
		st, parseErr := booking.ParseStatus(c.Status)
		if parseErr != nil {
			return GetTourQueryResponse{}, parseErr
		}
		resp.BookingCounts[st] = c.Count
	}

	return resp, nil
}

func toTourResponse(row tourRow) (GetTourQueryResponse, error) {
	carrierID, err := kernel.UUIDFromBytes(row.CarrierID[:])
	if err != nil {
		return GetTourQueryResponse{}, err
	}
	tourType, err := tour.ParseType(row.Type)
	if err != nil {
		return GetTourQueryResponse{}, err
	}
	status, err := tour.ParseStatus(row.Status)
	if err != nil {
		return GetTourQueryResponse{}, err
	}
	if len(row.Route) == 0 {
		return GetTourQueryResponse{}, errors.New("tour has no stored route")
	}

	presentation := status.Presentation()
	return GetTourQueryResponse{
		ID:                 row.ID,
		CarrierID:          carrierID,
		Type:               tourType,
		Status:             status,
		StatusLabel:        presentation.Label,
		StatusColor:        presentation.Color,
		OriginCountry:      row.OriginCountry,
		DestinationCountry: row.DestinationCountry,
		CollectionDate:     kernel.Day(time.Time(row.CollectionDate)),
		DepartureDate:      kernel.Day(time.Time(row.DepartureDate)),
		Route:              append([]RouteStop(nil), row.Route...),
		TotalCapacity:      row.TotalCapacity,
		RemainingCapacity:  row.RemainingCapacity,
	}, nil
}
