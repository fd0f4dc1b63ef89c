package bookingrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBookingRepository implements ports.BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update writes the booking only if its stored status still matches the
// loaded one, returning *errs.StaleStateError otherwise.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ? AND status = ?", dto.ID, aggregate.PersistedStatus().String()).
		Updates(map[string]any{
			"status":           dto.Status,
			"weight":           dto.Weight,
			"delivery_city":    dto.DeliveryCity,
			"delivery_address": dto.DeliveryAddress,
			"recipient_name":   dto.RecipientName,
			"recipient_phone":  dto.RecipientPhone,
			"special_items":    dto.SpecialItems,
			"content_types":    dto.ContentTypes,
			"updated_at":       dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStaleStateError("booking", aggregate.ID())
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// TransitionAll moves every booking of the tour in status from to status to
// with a single statement and returns the number of rows changed.
func (r *GormBookingRepository) TransitionAll(ctx context.Context, tourID int64, from, to booking.Status) (int64, error) {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("tour_id = ? AND status = ?", tourID, from.String()).
		Update("status", to.String())
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// WeightInStatus sums the weight of the tour's bookings in one status.
func (r *GormBookingRepository) WeightInStatus(ctx context.Context, tourID int64, status booking.Status) (int, error) {
	if err := status.Validate(); err != nil {
		return 0, err
	}

	var total int
	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Select("COALESCE(SUM(weight), 0)").
		Where("tour_id = ? AND status = ?", tourID, status.String()).
		Scan(&total).Error
	return total, err
}

// ReservedWeight sums the weight of every non-cancelled booking of the tour.
func (r *GormBookingRepository) ReservedWeight(ctx context.Context, tourID int64) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Select("COALESCE(SUM(weight), 0)").
		Where("tour_id = ? AND status <> ?", tourID, booking.Cancelled.String()).
		Scan(&total).Error
	return total, err
}

// ActivePickupCities lists the distinct pickup cities of non-cancelled bookings.
func (r *GormBookingRepository) ActivePickupCities(ctx context.Context, tourID int64) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Distinct().
		Where("tour_id = ? AND status <> ?", tourID, booking.Cancelled.String()).
		Order("pickup_city").
		Pluck("pickup_city", &cities).Error
	return cities, err
}
