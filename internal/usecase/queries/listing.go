package queries

import (
	"context"

	"fleet-rental/internal/domain/availability"
	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/pricing"

	"github.com/google/uuid"
)

// Store interfaces implemented by internal/infra/readstore.

type VehicleReadStore interface {
	FindAll(ctx context.Context) ([]*VehicleView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
	// FindBlockingSpans returns spans of pending and confirmed bookings
	// overlapping the period.
	FindBlockingSpans(ctx context.Context, period booking.DateRange) ([]availability.BookingSpan, error)
}

type RuleReadStore interface {
	FindOverlapping(ctx context.Context, period booking.DateRange) ([]*pricing.Rule, error)
	FindAll(ctx context.Context) ([]*RuleView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RuleView, error)
}

// ListingQueries is the aggregator: one availability pass over the fleet,
// then the pricing resolver per surviving vehicle. Every consumer of daily
// prices — search listing, direct checkout, admin booking — goes through
// this projection or the same resolver it delegates to.
type ListingQueries interface {
	Search(ctx context.Context, period booking.DateRange) ([]*VehicleListingView, error)
}

type listingQueriesImpl struct {
	vehicles VehicleReadStore
	bookings BookingReadStore
	rules    RuleReadStore
}

func NewListingQueries(vehicles VehicleReadStore, bookings BookingReadStore, rules RuleReadStore) ListingQueries {
	return &listingQueriesImpl{
		vehicles: vehicles,
		bookings: bookings,
		rules:    rules,
	}
}

func (q *listingQueriesImpl) Search(ctx context.Context, period booking.DateRange) ([]*VehicleListingView, error) {
	vehicles, err := q.vehicles.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	blocking, err := q.bookings.FindBlockingSpans(ctx, period)
	if err != nil {
		return nil, err
	}

	rules, err := q.rules.FindOverlapping(ctx, period)
	if err != nil {
		return nil, err
	}

	candidates := make([]uuid.UUID, len(vehicles))
	byID := make(map[uuid.UUID]*VehicleView, len(vehicles))
	for i, v := range vehicles {
		candidates[i] = v.ID
		byID[v.ID] = v
	}

	available := availability.Filter(candidates, blocking, period)

	listings := make([]*VehicleListingView, 0, len(available))
	for _, id := range available {
		v := byID[id]
		quote := pricing.ResolveDailyPrices(v.ID, v.BasePriceCents, period, rules)
		listings = append(listings, toListingView(v, quote))
	}
	return listings, nil
}

func toListingView(v *VehicleView, quote pricing.Quote) *VehicleListingView {
	days := make([]DayPriceView, len(quote.Days))
	for i, d := range quote.Days {
		days[i] = DayPriceView{
			Date:           d.Date.Format(booking.DateLayout),
			PriceCents:     d.PriceCents,
			IsSpecialPrice: d.IsSpecialPrice,
		}
	}
	return &VehicleListingView{
		VehicleID:          v.ID,
		Name:               v.Name,
		BasePriceCents:     v.BasePriceCents,
		DailyPrices:        days,
		TotalCents:         quote.TotalCents,
		AveragePerDayCents: quote.AveragePerDayCents(),
		HasSpecialPricing:  quote.HasSpecialPricing(),
	}
}
