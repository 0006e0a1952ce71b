package request

import (
	"fleet-rental/internal/domain/booking"
)

// SearchListingsRequest carries the rental period as calendar dates in
// query parameters, e.g. ?start_date=2025-12-24&end_date=2025-12-27.
type SearchListingsRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

func (r SearchListingsRequest) ToPeriod() (booking.DateRange, error) {
	return booking.ParseDateRange(r.StartDate, r.EndDate)
}
