package commands

import (
	"context"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/pricing"
	"fleet-rental/internal/domain/vehicle"
	"fleet-rental/internal/infra/db"

	"github.com/google/uuid"
)

type VehicleSnapshot struct {
	ID             uuid.UUID
	Name           string
	BasePriceCents int64
}

type BookingSnapshot struct {
	ID              uuid.UUID
	VehicleID       uuid.UUID
	UserID          uuid.UUID
	Period          booking.DateRange
	Status          booking.Status
	TotalPriceCents int64
}

type VehicleRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, v *vehicle.Vehicle) (uuid.UUID, error)
	// FindByIDForUpdate locks the vehicle row, serializing concurrent
	// booking attempts for the same vehicle within the transaction.
	FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*VehicleSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*BookingSnapshot, error)
	ExistsOverlapping(ctx context.Context, dbtx db.DBTX, vehicleID uuid.UUID, period booking.DateRange, statuses []booking.Status) (bool, error)
	// UpdateStatus applies the transition only if the row is still in the
	// expected current status; otherwise it reports not found.
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, current, next booking.Status) error
	CancelStalePending(ctx context.Context, dbtx db.DBTX, olderThan time.Time) (int64, error)
}

// RuleSnapshotReader reads the rule snapshot inside the booking
// transaction so the authoritative price reflects the rules at commit time.
type RuleSnapshotReader interface {
	OverlappingRules(ctx context.Context, dbtx db.DBTX, period booking.DateRange) ([]*pricing.Rule, error)
}

type RuleRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *pricing.Rule) (uuid.UUID, error)
	Update(ctx context.Context, dbtx db.DBTX, r *pricing.Rule) error
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type BookingEvent struct {
	Type       string    `json:"type"`
	BookingID  uuid.UUID `json:"booking_id"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
	UserID     uuid.UUID `json:"user_id"`
	TotalCents int64     `json:"total_cents"`
	OccurredAt time.Time `json:"occurred_at"`
}

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

// EventPublisher notifies downstream consumers of booking lifecycle
// changes. Publishing is best-effort after commit; failures are logged,
// never rolled back.
type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, evt BookingEvent) error
}
