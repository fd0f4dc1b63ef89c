// Package bookingrepo persists bookings and runs the bulk status changes
// and capacity sums the coordinator needs.
package bookingrepo

import (
	"time"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BookingDTO is the bookings table row.
type BookingDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TourID          int64     `gorm:"index;not null"`
	ClientID        uuid.UUID `gorm:"type:uuid;index;not null"`
	Status          string    `gorm:"size:16;index;not null"`
	Weight          int       `gorm:"not null"`
	PickupCity      string    `gorm:"size:128;not null"`
	DeliveryCity    string    `gorm:"size:128;not null"`
	DeliveryAddress string    `gorm:"size:255;not null"`
	RecipientName   string    `gorm:"size:128;not null"`
	RecipientPhone  string    `gorm:"size:32;not null"`
	SpecialItems    datatypes.JSONSlice[SpecialItemDTO]
	ContentTypes    datatypes.JSONSlice[string]
	TrackingNumber  string `gorm:"size:16;uniqueIndex;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (BookingDTO) TableName() string {
	return "bookings"
}

type SpecialItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func fromDomain(b *booking.Booking) BookingDTO {
	details := b.Details()

	items := make(datatypes.JSONSlice[SpecialItemDTO], 0, len(details.SpecialItems()))
	for _, item := range details.SpecialItems() {
		items = append(items, SpecialItemDTO{Name: item.Name(), Quantity: item.Quantity()})
	}

	return BookingDTO{
		ID:              b.ID().Bytes(),
		TourID:          b.TourID(),
		ClientID:        b.ClientID().Bytes(),
		Status:          b.Status().String(),
		Weight:          b.Weight(),
		PickupCity:      b.PickupCity(),
		DeliveryCity:    details.DeliveryCity(),
		DeliveryAddress: details.DeliveryAddress(),
		RecipientName:   details.RecipientName(),
		RecipientPhone:  details.RecipientPhone(),
		SpecialItems:    items,
		ContentTypes:    datatypes.JSONSlice[string](append([]string{}, details.ContentTypes()...)),
		TrackingNumber:  b.TrackingNumber().String(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func toDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	status, err := booking.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	trackingNumber, err := booking.ParseTrackingNumber(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	items := make([]booking.SpecialItem, 0, len(dto.SpecialItems))
	for _, raw := range dto.SpecialItems {
		item, itemErr := booking.NewSpecialItem(raw.Name, raw.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	details, err := booking.NewDetails(dto.DeliveryCity, dto.DeliveryAddress, dto.RecipientName,
		dto.RecipientPhone, items, dto.ContentTypes)
	if err != nil {
		return nil, err
	}

	return booking.RestoreBooking(id, dto.TourID, clientID, status, dto.Weight, dto.PickupCity,
		details, trackingNumber, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC())
}
