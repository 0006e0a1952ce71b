//go:build unit || e2e

package builder

import (
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/pricing"
	reqdto "fleet-rental/internal/handler/dto/request"
	"fleet-rental/internal/usecase/commands"

	"github.com/google/uuid"
)

type RuleBuilder struct {
	Name       string
	StartDate  string
	EndDate    string
	ApplyToAll bool
	VehicleIDs []uuid.UUID
	PriceType  string
	PriceValue float64
	CreatedAt  time.Time
}

func NewRuleBuilder() *RuleBuilder {
	return &RuleBuilder{
		Name:       "Holiday surge",
		StartDate:  "2025-12-24",
		EndDate:    "2025-12-26",
		ApplyToAll: true,
		PriceType:  string(pricing.PriceTypeMultiplier),
		PriceValue: 1.5,
		CreatedAt:  time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *RuleBuilder) WithName(name string) *RuleBuilder {
	b.Name = name
	return b
}

func (b *RuleBuilder) WithDates(start, end string) *RuleBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *RuleBuilder) WithVehicles(ids ...uuid.UUID) *RuleBuilder {
	b.ApplyToAll = false
	b.VehicleIDs = ids
	return b
}

func (b *RuleBuilder) WithFixedPrice(cents float64) *RuleBuilder {
	b.PriceType = string(pricing.PriceTypeFixed)
	b.PriceValue = cents
	return b
}

func (b *RuleBuilder) WithMultiplier(value float64) *RuleBuilder {
	b.PriceType = string(pricing.PriceTypeMultiplier)
	b.PriceValue = value
	return b
}

func (b *RuleBuilder) WithCreatedAt(t time.Time) *RuleBuilder {
	b.CreatedAt = t
	return b
}

func (b *RuleBuilder) BuildDomain() (*pricing.Rule, error) {
	period, err := booking.ParseDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	return pricing.NewRule(
		b.Name,
		period,
		b.ApplyToAll,
		b.VehicleIDs,
		pricing.PriceType(b.PriceType),
		b.PriceValue,
		b.CreatedAt,
	)
}

func (b *RuleBuilder) BuildParams() (commands.RuleParams, error) {
	period, err := booking.ParseDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return commands.RuleParams{}, err
	}
	return commands.RuleParams{
		Name:       b.Name,
		Period:     period,
		ApplyToAll: b.ApplyToAll,
		VehicleIDs: b.VehicleIDs,
		PriceType:  b.PriceType,
		PriceValue: b.PriceValue,
	}, nil
}

func (b *RuleBuilder) BuildRequestDTO() reqdto.RuleRequest {
	return reqdto.RuleRequest{
		Name:       b.Name,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		ApplyToAll: b.ApplyToAll,
		VehicleIDs: b.VehicleIDs,
		PriceType:  b.PriceType,
		PriceValue: b.PriceValue,
	}
}
