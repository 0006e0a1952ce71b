package readstore

import (
	"context"
	"errors"
	"time"

	"fleet-rental/internal/domain/availability"
	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/infra"
	"fleet-rental/internal/infra/db"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const findBookingViewSQL = `
SELECT b.id, b.vehicle_id, v.name, b.user_id, b.start_date, b.end_date, b.status, b.total_price_cents, b.created_at, b.updated_at
FROM bookings b
JOIN vehicles v ON v.id = b.vehicle_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row := r.db.QueryRow(ctx, findBookingViewSQL, id)
	view, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

const findBookingsByUserSQL = `
SELECT b.id, b.vehicle_id, v.name, b.user_id, b.start_date, b.end_date, b.status, b.total_price_cents, b.created_at, b.updated_at
FROM bookings b
JOIN vehicles v ON v.id = b.vehicle_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC`

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, findBookingsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

const findBlockingSpansSQL = `
SELECT vehicle_id, start_date, end_date
FROM bookings
WHERE status IN ('pending', 'confirmed')
  AND start_date <= $2
  AND end_date >= $1`

// FindBlockingSpans fetches pending and confirmed bookings overlapping the
// period. Ranges are inclusive on both ends, so two bookings touching on the
// same day conflict.
func (r *BookingReadStore) FindBlockingSpans(ctx context.Context, period booking.DateRange) ([]availability.BookingSpan, error) {
	rows, err := r.db.Query(ctx, findBlockingSpansSQL, period.Start(), period.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking bookings", err)
	}
	defer rows.Close()

	var spans []availability.BookingSpan
	for rows.Next() {
		var (
			vehicleID  uuid.UUID
			start, end time.Time
		)
		if err := rows.Scan(&vehicleID, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking booking row", err)
		}
		span, err := booking.NewDateRange(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("stored booking has invalid date range", err)
		}
		spans = append(spans, availability.BookingSpan{VehicleID: vehicleID, Period: span})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read blocking booking rows", err)
	}
	return spans, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var (
		v          queries.BookingView
		start, end time.Time
	)
	err := row.Scan(&v.ID, &v.VehicleID, &v.VehicleName, &v.UserID, &start, &end, &v.Status, &v.TotalPriceCents, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	v.StartDate = start.Format(booking.DateLayout)
	v.EndDate = end.Format(booking.DateLayout)
	return &v, nil
}
