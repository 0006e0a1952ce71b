package response

import (
	"time"

	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RuleResponse struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	StartDate  string      `json:"startDate"`
	EndDate    string      `json:"endDate"`
	ApplyToAll bool        `json:"applyToAll"`
	VehicleIDs []uuid.UUID `json:"vehicleIds,omitempty"`
	PriceType  string      `json:"priceType"`
	PriceValue float64     `json:"priceValue"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

func FromRuleView(view *queries.RuleView) *RuleResponse {
	var resp RuleResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRuleViews(views []*queries.RuleView) []*RuleResponse {
	resp := make([]*RuleResponse, len(views))
	for i, v := range views {
		resp[i] = FromRuleView(v)
	}
	return resp
}
