package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrMissingVehicle    = errors.New("booking requires a vehicle")
	ErrMissingUser       = errors.New("booking requires a user")
)

type Booking struct {
	id         uuid.UUID
	vehicleID  uuid.UUID
	userID     uuid.UUID
	period     DateRange
	status     Status
	totalPrice Money
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking creates a booking in one of the two creatable states:
// pending (customer checkout awaiting payment) or confirmed (direct
// operator creation). The total price must come from the pricing resolver,
// never from client input.
func NewBooking(vehicleID, userID uuid.UUID, period DateRange, totalPrice Money, status Status) (*Booking, error) {
	if vehicleID == uuid.Nil {
		return nil, ErrMissingVehicle
	}
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if status != StatusPending && status != StatusConfirmed {
		return nil, ErrInvalidStatus
	}

	return &Booking{
		id:         uuid.New(),
		vehicleID:  vehicleID,
		userID:     userID,
		period:     period,
		status:     status,
		totalPrice: totalPrice,
	}, nil
}

func ReconstructBooking(
	id, vehicleID, userID uuid.UUID,
	period DateRange,
	status Status,
	totalPrice Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		vehicleID:  vehicleID,
		userID:     userID,
		period:     period,
		status:     status,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) Confirm() error {
	return b.transitionTo(StatusConfirmed)
}

func (b *Booking) Cancel() error {
	return b.transitionTo(StatusCancelled)
}

func (b *Booking) Complete() error {
	return b.transitionTo(StatusCompleted)
}

func (b *Booking) transitionTo(next Status) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

func (b *Booking) IsBlocking() bool {
	return b.status == StatusPending || b.status == StatusConfirmed
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) VehicleID() uuid.UUID { return b.vehicleID }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Period() DateRange    { return b.period }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) TotalPrice() Money    { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
