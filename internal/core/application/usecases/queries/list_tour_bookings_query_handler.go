package queries

import (
	"context"
	"strings"

	"shipping/internal/core/domain/model/booking"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListTourBookingsQueryHandler struct {
	db *gorm.DB
}

func NewListTourBookingsQueryHandler(db *gorm.DB) ListTourBookingsQueryHandler {
	return ListTourBookingsQueryHandler{db: db}
}

// Handle returns the matching bookings, ties broken by id so pages are stable.
// An unknown tour is *errs.ObjectNotFoundError; a tour without bookings is an
// empty slice.
func (h ListTourBookingsQueryHandler) Handle(ctx context.Context, query ListTourBookingsQuery) ([]BookingRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := tourExists(ctx, h.db, query.TourID()); err != nil {
		return nil, err
	}

	var sql strings.Builder
	sql.WriteString(`
		SELECT
			id,
			client_id,
			tracking_number,
			status,
			weight,
			pickup_city,
			delivery_city,
			recipient_name,
			created_at
		FROM bookings
		WHERE tour_id = ?`)
	args := []any{query.TourID()}

	if city := query.DeliveryCity(); city != "" {
		sql.WriteString(" AND delivery_city = ?")
		args = append(args, city)
	}
	if status := query.Status(); status != booking.Unknown {
		sql.WriteString(" AND status = ?")
		args = append(args, status.String())
	}

	// sort and order are closed enums, never caller text.
	direction := "DESC"
	if query.Order() == Ascending {
		direction = "ASC"
	}
	sql.WriteString(" ORDER BY " + string(query.Sort()) + " " + direction + ", id " + direction)

	rows, err := h.db.WithContext(ctx).Raw(sql.String(), args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]BookingRow, 0)
	for rows.Next() {
		var row BookingRow
		var id, clientID uuid.UUID
		var status string

		if err = rows.Scan(
			&id,
			&clientID,
			&row.TrackingNumber,
			&status,
			&row.Weight,
			&row.PickupCity,
			&row.DeliveryCity,
			&row.RecipientName,
			&row.CreatedAt,
		); err != nil {
			return nil, err
		}

		if row.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if row.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if row.Status, err = booking.ParseStatus(status); err != nil {
			return nil, err
		}
		presentation := row.Status.Presentation()
		row.StatusLabel = presentation.Label
		row.StatusColor = presentation.Color
		row.CreatedAt = row.CreatedAt.UTC()

		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func tourExists(ctx context.Context, db *gorm.DB, tourID int64) error {
	var count int64
	if err := db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM tours WHERE id = ?`, tourID).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("tour", tourID)
	}
	return nil
}
