package response

import (
	"time"

	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VehicleResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	BasePriceCents int64     `json:"basePriceCents"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromVehicleView(view *queries.VehicleView) *VehicleResponse {
	var resp VehicleResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromVehicleViews(views []*queries.VehicleView) []*VehicleResponse {
	resp := make([]*VehicleResponse, len(views))
	for i, v := range views {
		resp[i] = FromVehicleView(v)
	}
	return resp
}
