package ports

import (
	"context"

	"shipping/internal/core/domain/model/approval"
	"shipping/internal/core/domain/model/kernel"
)

// ApprovalRepository persists approval requests for private tours.
type ApprovalRepository interface {
	Add(ctx context.Context, aggregate *approval.Request) error
	Update(ctx context.Context, aggregate *approval.Request) error
	Get(ctx context.Context, id kernel.UUID) (*approval.Request, error)

	// Latest returns the client's most recent request for the tour, or nil
	// without error when the client never asked.
	Latest(ctx context.Context, tourID int64, clientID kernel.UUID) (*approval.Request, error)
}
