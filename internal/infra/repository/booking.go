package repository

import (
	"context"
	"errors"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/infra"
	"fleet-rental/internal/infra/db"
	"fleet-rental/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

const createBookingSQL = `
INSERT INTO bookings (id, vehicle_id, user_id, start_date, end_date, status, total_price_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

// Create inserts the booking. The bookings_no_overlap exclusion constraint
// rejects any insert overlapping a pending or confirmed booking for the
// same vehicle; that surfaces as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createBookingSQL,
		b.ID(),
		b.VehicleID(),
		b.UserID(),
		b.Period().Start(),
		b.Period().End(),
		b.Status().String(),
		b.TotalPrice().Cents(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

const findBookingSQL = `
SELECT id, vehicle_id, user_id, start_date, end_date, status, total_price_cents
FROM bookings
WHERE id = $1`

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.BookingSnapshot, error) {
	var (
		snap       commands.BookingSnapshot
		start, end time.Time
		status     string
	)
	err := dbtx.QueryRow(ctx, findBookingSQL, id).Scan(
		&snap.ID, &snap.VehicleID, &snap.UserID, &start, &end, &status, &snap.TotalPriceCents,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	period, err := booking.NewDateRange(start, end)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid date range", err)
	}
	snap.Period = period
	snap.Status = booking.Status(status)
	return &snap, nil
}

const existsOverlappingSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE vehicle_id = $1
      AND status = ANY($2)
      AND start_date <= $4
      AND end_date >= $3
)`

func (r *BookingRepository) ExistsOverlapping(ctx context.Context, dbtx db.DBTX, vehicleID uuid.UUID, period booking.DateRange, statuses []booking.Status) (bool, error) {
	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = s.String()
	}

	var exists bool
	err := dbtx.QueryRow(ctx, existsOverlappingSQL, vehicleID, ss, period.Start(), period.End()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check overlapping bookings", err)
	}
	return exists, nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2`

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, current, next booking.Status) error {
	tag, err := dbtx.Exec(ctx, updateBookingStatusSQL, id, current.String(), next.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not in expected status", nil, infra.KindNotFound)
	}
	return nil
}

const cancelStalePendingSQL = `
UPDATE bookings
SET status = 'cancelled', updated_at = now()
WHERE status = 'pending' AND created_at < $1`

func (r *BookingRepository) CancelStalePending(ctx context.Context, dbtx db.DBTX, olderThan time.Time) (int64, error) {
	tag, err := dbtx.Exec(ctx, cancelStalePendingSQL, olderThan)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel stale pending bookings", err)
	}
	return tag.RowsAffected(), nil
}
