package availability

import (
	"fleet-rental/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingSpan is the slice of a booking that availability cares about.
type BookingSpan struct {
	VehicleID uuid.UUID
	Period    booking.DateRange
}

// Filter returns the candidates with no blocking booking overlapping the
// queried range, preserving candidate order. The caller decides which
// statuses block by choosing which spans to pass in (see
// booking.BlockingStatuses). An empty result is a valid outcome, not an
// error.
func Filter(candidates []uuid.UUID, blocking []BookingSpan, period booking.DateRange) []uuid.UUID {
	taken := make(map[uuid.UUID]struct{})
	for _, span := range blocking {
		if span.Period.Overlaps(period) {
			taken[span.VehicleID] = struct{}{}
		}
	}

	available := make([]uuid.UUID, 0, len(candidates))
	for _, id := range candidates {
		if _, ok := taken[id]; !ok {
			available = append(available, id)
		}
	}
	return available
}
