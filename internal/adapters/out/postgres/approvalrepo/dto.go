// Package approvalrepo persists approval requests for private tours.
package approvalrepo

import (
	"time"

	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ApprovalRequestDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TourID    int64     `gorm:"index:idx_approval_tour_client;not null"`
	ClientID  uuid.UUID `gorm:"type:uuid;index:idx_approval_tour_client;not null"`
	Status    string    `gorm:"size:16;not null"`
	Message   string    `gorm:"size:1000"`
	CreatedAt time.Time
	DecidedAt *time.Time
}

func (ApprovalRequestDTO) TableName() string {
	return "approval_requests"
}

func fromDomain(r *approval.Request) ApprovalRequestDTO {
	return ApprovalRequestDTO{
		ID:        r.ID().Bytes(),
		TourID:    r.TourID(),
		ClientID:  r.ClientID().Bytes(),
		Status:    r.Status().String(),
		Message:   r.Message(),
		CreatedAt: r.CreatedAt(),
		DecidedAt: r.DecidedAt(),
	}
}

func toDomain(dto ApprovalRequestDTO) (*approval.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	status, err := approval.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return approval.RestoreRequest(id, dto.TourID, clientID, status, dto.Message, dto.CreatedAt.UTC(), dto.DecidedAt)
}
