package request

import (
	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type RuleRequest struct {
	Name       string      `json:"name" binding:"required"`
	StartDate  string      `json:"start_date" binding:"required"`
	EndDate    string      `json:"end_date" binding:"required"`
	ApplyToAll bool        `json:"apply_to_all"`
	VehicleIDs []uuid.UUID `json:"vehicle_ids"`
	PriceType  string      `json:"price_type" binding:"required,oneof=multiplier fixed"`
	PriceValue float64     `json:"price_value" binding:"required"`
}

func (r RuleRequest) ToParams() (commands.RuleParams, error) {
	period, err := booking.ParseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return commands.RuleParams{}, err
	}
	return commands.RuleParams{
		Name:       r.Name,
		Period:     period,
		ApplyToAll: r.ApplyToAll,
		VehicleIDs: r.VehicleIDs,
		PriceType:  r.PriceType,
		PriceValue: r.PriceValue,
	}, nil
}
