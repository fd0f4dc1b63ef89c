package queries

import (
	"context"

	"shipping/internal/core/domain/model/booking"

	"gorm.io/gorm"
)

type GetCapacityDriftQueryHandler struct {
	db *gorm.DB
}

func NewGetCapacityDriftQueryHandler(db *gorm.DB) GetCapacityDriftQueryHandler {
	return GetCapacityDriftQueryHandler{db: db}
}

// Handle lists drifted tours ordered by id. A consistent store yields an empty slice.
func (h GetCapacityDriftQueryHandler) Handle(ctx context.Context, query GetCapacityDriftQuery) ([]CapacityDrift, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.total_capacity,
			t.remaining_capacity,
			COALESCE(SUM(b.weight), 0) AS reserved
		FROM tours t
		LEFT JOIN bookings b ON b.tour_id = t.id AND b.status <> ?
		WHERE (? = 0 OR t.id = ?)
		GROUP BY t.id, t.total_capacity, t.remaining_capacity
		HAVING t.remaining_capacity <> t.total_capacity - COALESCE(SUM(b.weight), 0)
		ORDER BY t.id
	`, booking.Cancelled.String(), query.TourID(), query.TourID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drifts := make([]CapacityDrift, 0)
	for rows.Next() {
		var d CapacityDrift
		if err = rows.Scan(&d.TourID, &d.TotalCapacity, &d.RemainingCapacity, &d.ReservedWeight); err != nil {
			return nil, err
		}
		d.Drift = d.RemainingCapacity - (d.TotalCapacity - d.ReservedWeight)
		drifts = append(drifts, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drifts, nil
}
