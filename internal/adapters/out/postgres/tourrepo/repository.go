package tourrepo

import (
	"context"
	"errors"
	"strconv"

	"shipping/internal/core/domain/model/tour"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTourRepository implements ports.TourRepository using GORM.
type GormTourRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormTourRepository(db *gorm.DB, tracker aggregateTracker) *GormTourRepository {
	return &GormTourRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new tour and assigns the generated id to the aggregate.
func (r *GormTourRepository) Add(ctx context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(dto.ID); err != nil {
		return err
	}
	aggregate.MarkPersisted()

	r.tracker.TrackAggregate(strconv.FormatInt(dto.ID, 10), aggregate)
	return nil
}

// Update writes the tour only if its stored status and remaining capacity
// still match what was loaded. Otherwise it returns *errs.StaleStateError
// and nothing is written.
func (r *GormTourRepository) Update(ctx context.Context, aggregate *tour.Tour) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TourDTO{}).
		Where("id = ? AND status = ? AND remaining_capacity = ?",
			dto.ID, aggregate.PersistedStatus().String(), aggregate.PersistedRemaining()).
		Updates(map[string]any{
			"route":              dto.Route,
			"total_capacity":     dto.TotalCapacity,
			"remaining_capacity": dto.RemainingCapacity,
			"status":             dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStaleStateError("tour", dto.ID)
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(strconv.FormatInt(dto.ID, 10), aggregate)
	return nil
}

func (r *GormTourRepository) Get(ctx context.Context, id int64) (*tour.Tour, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("tour id", id, 1, "max int64")
	}

	var dto TourDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("tour", id)
		}
		return nil, err
	}

	return toDomain(dto)
}
