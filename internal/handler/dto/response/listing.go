package response

import (
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DayPriceResponse struct {
	Date           string `json:"date"`
	PriceCents     int64  `json:"priceCents"`
	IsSpecialPrice bool   `json:"isSpecialPrice"`
}

type ListingResponse struct {
	VehicleID          uuid.UUID          `json:"vehicleId"`
	Name               string             `json:"name"`
	BasePriceCents     int64              `json:"basePriceCents"`
	DailyPrices        []DayPriceResponse `json:"dailyPrices"`
	TotalCents         int64              `json:"totalCents"`
	AveragePerDayCents int64              `json:"averagePerDayCents"`
	HasSpecialPricing  bool               `json:"hasSpecialPricing"`
}

func FromListingView(view *queries.VehicleListingView) *ListingResponse {
	var resp ListingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromListingViews(views []*queries.VehicleListingView) []*ListingResponse {
	resp := make([]*ListingResponse, len(views))
	for i, v := range views {
		resp[i] = FromListingView(v)
	}
	return resp
}
