package response

import (
	"time"

	"fleet-rental/internal/usecase/commands"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicleId"`
	VehicleName     string    `json:"vehicleName"`
	UserID          uuid.UUID `json:"userId"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CreatedBookingResponse returns the server-computed quote alongside the new
// booking so the client can show the authoritative breakdown.
type CreatedBookingResponse struct {
	BookingID  uuid.UUID          `json:"bookingId"`
	Status     string             `json:"status"`
	TotalCents int64              `json:"totalCents"`
	Days       []DayPriceResponse `json:"days"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	resp := make([]*BookingResponse, len(views))
	for i, v := range views {
		resp[i] = FromBookingView(v)
	}
	return resp
}

func FromCreateBookingResult(result *commands.CreateBookingResult) *CreatedBookingResponse {
	var resp CreatedBookingResponse
	_ = copier.Copy(&resp, result)
	return &resp
}
