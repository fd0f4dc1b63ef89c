package approvalrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApprovalRepository implements ports.ApprovalRepository using GORM.
type GormApprovalRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

func NewGormApprovalRepository(db *gorm.DB, tracker aggregateTracker) *GormApprovalRepository {
	return &GormApprovalRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormApprovalRepository) Add(ctx context.Context, aggregate *approval.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update stores a decision. Decided requests are immutable, so the write is
// guarded by the pending status.
func (r *GormApprovalRepository) Update(ctx context.Context, aggregate *approval.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ApprovalRequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, approval.Pending.String()).
		Updates(map[string]any{
			"status":     dto.Status,
			"decided_at": dto.DecidedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStaleStateError("approval request", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

func (r *GormApprovalRepository) Get(ctx context.Context, id kernel.UUID) (*approval.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApprovalRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("approval request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormApprovalRepository) Latest(ctx context.Context, tourID int64, clientID kernel.UUID) (*approval.Request, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ApprovalRequestDTO
	err := r.db.WithContext(ctx).
		Where("tour_id = ? AND client_id = ?", tourID, clientID.Bytes()).
		Order("created_at DESC").
		Limit(1).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, nil //nolint:nilnil // absence is a valid answer
	}

	return toDomain(dtos[0])
}
