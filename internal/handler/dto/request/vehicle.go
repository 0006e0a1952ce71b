package request

import "fleet-rental/internal/usecase/commands"

type VehicleRequest struct {
	Name           string `json:"name" binding:"required"`
	BasePriceCents int64  `json:"base_price_cents" binding:"required"`
}

func (r VehicleRequest) ToParams() commands.VehicleParams {
	return commands.VehicleParams{
		Name:           r.Name,
		BasePriceCents: r.BasePriceCents,
	}
}
