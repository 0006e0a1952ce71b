package pricing

import (
	"math"
	"time"

	"fleet-rental/internal/domain/booking"

	"github.com/google/uuid"
)

type DayPrice struct {
	Date           time.Time
	PriceCents     int64
	IsSpecialPrice bool
}

type Quote struct {
	Days       []DayPrice
	TotalCents int64
}

func (q Quote) HasSpecialPricing() bool {
	for _, d := range q.Days {
		if d.IsSpecialPrice {
			return true
		}
	}
	return false
}

// AveragePerDayCents is for display only. It is lossy and must never be
// used to recompute the total.
func (q Quote) AveragePerDayCents() int64 {
	if len(q.Days) == 0 {
		return 0
	}
	return int64(math.Round(float64(q.TotalCents) / float64(len(q.Days))))
}

// ResolveDailyPrices computes the authoritative per-day price sequence for
// one vehicle over an inclusive date range. It is pure: the caller supplies
// the rule snapshot, and identical inputs always produce identical output.
//
// Per day: among rules whose period contains the day and whose scope
// includes the vehicle, the winner under TakesPrecedence sets the price
// (multiplier of the base rate, or a fixed amount in cents); with no
// applicable rule the base rate governs. Rounding is applied per day, not
// to the aggregate, and the total is the exact sum of the rounded days.
func ResolveDailyPrices(vehicleID uuid.UUID, basePriceCents int64, period booking.DateRange, rules []*Rule) Quote {
	days := period.Days()
	quote := Quote{Days: make([]DayPrice, 0, len(days))}

	for _, day := range days {
		var applicable []*Rule
		for _, r := range rules {
			if r.AppliesTo(vehicleID, day) {
				applicable = append(applicable, r)
			}
		}

		price := basePriceCents
		if winner := SelectWinner(applicable); winner != nil {
			switch winner.PriceType() {
			case PriceTypeMultiplier:
				price = int64(math.Round(float64(basePriceCents) * winner.PriceValue()))
			case PriceTypeFixed:
				price = int64(math.Round(winner.PriceValue()))
			}
		}

		quote.Days = append(quote.Days, DayPrice{
			Date:           day,
			PriceCents:     price,
			IsSpecialPrice: len(applicable) > 0,
		})
		quote.TotalCents += price
	}

	return quote
}
