package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type VehicleView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BasePriceCents int64     `json:"base_price_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DayPriceView struct {
	Date           string `json:"date"`
	PriceCents     int64  `json:"price_cents"`
	IsSpecialPrice bool   `json:"is_special_price"`
}

// VehicleListingView is the per-vehicle projection of availability plus the
// daily price breakdown. The same projection backs search results and the
// checkout quote; it is never recomputed per call site.
type VehicleListingView struct {
	VehicleID          uuid.UUID      `json:"vehicle_id"`
	Name               string         `json:"name"`
	BasePriceCents     int64          `json:"base_price_cents"`
	DailyPrices        []DayPriceView `json:"daily_prices"`
	TotalCents         int64          `json:"total_cents"`
	AveragePerDayCents int64          `json:"average_per_day_cents"`
	HasSpecialPricing  bool           `json:"has_special_pricing"`
}

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	VehicleID       uuid.UUID `json:"vehicle_id"`
	VehicleName     string    `json:"vehicle_name"`
	UserID          uuid.UUID `json:"user_id"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type RuleView struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	StartDate  string      `json:"start_date"`
	EndDate    string      `json:"end_date"`
	ApplyToAll bool        `json:"apply_to_all"`
	VehicleIDs []uuid.UUID `json:"vehicle_ids,omitempty"`
	PriceType  string      `json:"price_type"`
	PriceValue float64     `json:"price_value"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
