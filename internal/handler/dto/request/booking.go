package request

import (
	"fleet-rental/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
}

func (r CreateBookingRequest) ToPeriod() (booking.DateRange, error) {
	return booking.ParseDateRange(r.StartDate, r.EndDate)
}

// AdminCreateBookingRequest lets an operator book on behalf of a customer,
// optionally skipping the payment hold.
type AdminCreateBookingRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" binding:"required"`
	UserID    uuid.UUID `json:"user_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
	Confirmed bool      `json:"confirmed"`
}

func (r AdminCreateBookingRequest) ToPeriod() (booking.DateRange, error) {
	return booking.ParseDateRange(r.StartDate, r.EndDate)
}

// PaymentWebhookRequest is the payment provider's callback payload.
type PaymentWebhookRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Status    string    `json:"status" binding:"required,oneof=succeeded failed"`
}
