//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"fleet-rental/internal/domain/availability"
	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/pricing"
	"fleet-rental/internal/usecase/queries"
	"fleet-rental/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVehicleStore struct {
	vehicles []*queries.VehicleView
}

func (s *stubVehicleStore) FindAll(context.Context) ([]*queries.VehicleView, error) {
	return s.vehicles, nil
}

func (s *stubVehicleStore) FindByID(_ context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	for _, v := range s.vehicles {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, queries.ErrBookingViewNotFound
}

type stubBookingStore struct {
	spans []availability.BookingSpan
}

func (s *stubBookingStore) FindByID(context.Context, uuid.UUID) (*queries.BookingView, error) {
	return nil, nil
}

func (s *stubBookingStore) FindByUserID(context.Context, uuid.UUID) ([]*queries.BookingView, error) {
	return nil, nil
}

func (s *stubBookingStore) FindBlockingSpans(_ context.Context, period booking.DateRange) ([]availability.BookingSpan, error) {
	var out []availability.BookingSpan
	for _, span := range s.spans {
		if span.Period.Overlaps(period) {
			out = append(out, span)
		}
	}
	return out, nil
}

type stubRuleStore struct {
	rules []*pricing.Rule
}

func (s *stubRuleStore) FindOverlapping(_ context.Context, period booking.DateRange) ([]*pricing.Rule, error) {
	var out []*pricing.Rule
	for _, r := range s.rules {
		if r.Period().Overlaps(period) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubRuleStore) FindAll(context.Context) ([]*queries.RuleView, error) {
	return nil, nil
}

func (s *stubRuleStore) FindByID(context.Context, uuid.UUID) (*queries.RuleView, error) {
	return nil, nil
}

func TestListingSearch(t *testing.T) {
	sedan := &queries.VehicleView{ID: uuid.New(), Name: "Sedan", BasePriceCents: 10000}
	suv := &queries.VehicleView{ID: uuid.New(), Name: "SUV", BasePriceCents: 20000}

	period, err := booking.ParseDateRange("2025-12-24", "2025-12-27")
	require.NoError(t, err)

	t.Run("booked vehicle is excluded, the rest get daily prices", func(t *testing.T) {
		blockedSpan, err := booking.ParseDateRange("2025-12-27", "2025-12-30")
		require.NoError(t, err)

		t1 := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
		surge, err := builder.NewRuleBuilder().
			WithDates("2025-12-24", "2025-12-26").
			WithMultiplier(1.5).
			WithCreatedAt(t1).
			BuildDomain()
		require.NoError(t, err)
		promo, err := builder.NewRuleBuilder().
			WithDates("2025-12-25", "2025-12-27").
			WithFixedPrice(9000).
			WithCreatedAt(t1.Add(time.Hour)).
			BuildDomain()
		require.NoError(t, err)

		q := queries.NewListingQueries(
			&stubVehicleStore{vehicles: []*queries.VehicleView{sedan, suv}},
			&stubBookingStore{spans: []availability.BookingSpan{{VehicleID: suv.ID, Period: blockedSpan}}},
			&stubRuleStore{rules: []*pricing.Rule{surge, promo}},
		)

		listings, err := q.Search(context.Background(), period)
		require.NoError(t, err)
		require.Len(t, listings, 1)

		got := listings[0]
		assert.Equal(t, sedan.ID, got.VehicleID)
		assert.Equal(t, "Sedan", got.Name)
		require.Len(t, got.DailyPrices, 4)
		assert.Equal(t, "2025-12-24", got.DailyPrices[0].Date)
		assert.Equal(t, int64(15000), got.DailyPrices[0].PriceCents)
		assert.Equal(t, int64(9000), got.DailyPrices[1].PriceCents)
		assert.Equal(t, int64(9000), got.DailyPrices[2].PriceCents)
		assert.Equal(t, int64(9000), got.DailyPrices[3].PriceCents)
		assert.Equal(t, int64(42000), got.TotalCents)
		assert.Equal(t, int64(10500), got.AveragePerDayCents)
		assert.True(t, got.HasSpecialPricing)
	})

	t.Run("no rules means base rate listings", func(t *testing.T) {
		q := queries.NewListingQueries(
			&stubVehicleStore{vehicles: []*queries.VehicleView{sedan, suv}},
			&stubBookingStore{},
			&stubRuleStore{},
		)

		listings, err := q.Search(context.Background(), period)
		require.NoError(t, err)
		require.Len(t, listings, 2)

		assert.Equal(t, int64(40000), listings[0].TotalCents)
		assert.Equal(t, int64(80000), listings[1].TotalCents)
		assert.False(t, listings[0].HasSpecialPricing)
	})

	t.Run("all vehicles booked yields an empty result", func(t *testing.T) {
		q := queries.NewListingQueries(
			&stubVehicleStore{vehicles: []*queries.VehicleView{sedan, suv}},
			&stubBookingStore{spans: []availability.BookingSpan{
				{VehicleID: sedan.ID, Period: period},
				{VehicleID: suv.ID, Period: period},
			}},
			&stubRuleStore{},
		)

		listings, err := q.Search(context.Background(), period)
		require.NoError(t, err)
		assert.Empty(t, listings)
	})
}
