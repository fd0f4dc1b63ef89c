// Package tourrepo persists the tour aggregate. The capacity ledger and the
// status live in the tours row; the route is a JSON column.
package tourrepo

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/tour"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TourDTO is the tours table row.
type TourDTO struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	CarrierID          uuid.UUID `gorm:"type:uuid;index;not null"`
	Type               string    `gorm:"size:16;not null"`
	OriginCountry      string    `gorm:"size:64;not null"`
	DestinationCountry string    `gorm:"size:64;not null"`
	CollectionDate     datatypes.Date
	DepartureDate      datatypes.Date
	Route              datatypes.JSONSlice[StopDTO]
	TotalCapacity      int    `gorm:"not null"`
	RemainingCapacity  int    `gorm:"not null"`
	Status             string `gorm:"size:16;index;not null"`
}

func (TourDTO) TableName() string {
	return "tours"
}

// StopDTO is one element of the route JSON column.
type StopDTO struct {
	Name           string `json:"name"`
	CollectionDate string `json:"collection_date"`
}

func fromDomain(t *tour.Tour) TourDTO {
	schedule := t.Schedule()
	return TourDTO{
		ID:                 t.ID(),
		CarrierID:          t.CarrierID().Bytes(),
		Type:               t.Type().String(),
		OriginCountry:      schedule.OriginCountry(),
		DestinationCountry: schedule.DestinationCountry(),
		CollectionDate:     datatypes.Date(schedule.CollectionDate()),
		DepartureDate:      datatypes.Date(schedule.DepartureDate()),
		Route:              routeToDTO(t.Route()),
		TotalCapacity:      t.TotalCapacity(),
		RemainingCapacity:  t.RemainingCapacity(),
		Status:             t.Status().String(),
	}
}

func routeToDTO(route []tour.Stop) datatypes.JSONSlice[StopDTO] {
	stops := make(datatypes.JSONSlice[StopDTO], 0, len(route))
	for _, s := range route {
		stops = append(stops, StopDTO{
			Name:           s.Name(),
			CollectionDate: s.CollectionDate().Format(time.DateOnly),
		})
	}
	return stops
}

func toDomain(dto TourDTO) (*tour.Tour, error) {
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	tourType, err := tour.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := tour.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	schedule, err := tour.NewSchedule(dto.OriginCountry, dto.DestinationCountry,
		time.Time(dto.CollectionDate), time.Time(dto.DepartureDate))
	if err != nil {
		return nil, err
	}

	route := make([]tour.Stop, 0, len(dto.Route))
	for _, s := range dto.Route {
		day, parseErr := time.Parse(time.DateOnly, s.CollectionDate)
		if parseErr != nil {
			return nil, parseErr
		}
		stop, stopErr := tour.NewStop(s.Name, day)
		if stopErr != nil {
			return nil, stopErr
		}
		route = append(route, stop)
	}

	return tour.RestoreTour(dto.ID, carrierID, tourType, schedule, route,
		dto.TotalCapacity, dto.RemainingCapacity, status)
}
