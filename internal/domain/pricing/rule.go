package pricing

import (
	"errors"
	"strings"
	"time"

	"fleet-rental/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyRuleName     = errors.New("rule name cannot be empty")
	ErrInvalidPriceType  = errors.New("invalid price type")
	ErrInvalidPriceValue = errors.New("invalid price value")
	ErrEmptyVehicleScope = errors.New("rule must apply to all vehicles or name at least one")
)

type PriceType string

const (
	// PriceTypeMultiplier scales the vehicle's base daily rate.
	PriceTypeMultiplier PriceType = "multiplier"
	// PriceTypeFixed replaces the daily rate with an absolute amount in cents.
	PriceTypeFixed PriceType = "fixed"
)

func (t PriceType) IsValid() bool {
	return t == PriceTypeMultiplier || t == PriceTypeFixed
}

// MaxMultiplier bounds promotional multipliers to a sane range.
const MaxMultiplier = 10.0

// Rule is a date-ranged override of the base daily price, scoped to the
// whole fleet or an explicit vehicle set. Validation happens here, at
// creation time, so the resolver never sees an invalid rule.
type Rule struct {
	id         uuid.UUID
	name       string
	period     booking.DateRange
	applyToAll bool
	vehicleIDs map[uuid.UUID]struct{}
	priceType  PriceType
	priceValue float64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewRule(
	name string,
	period booking.DateRange,
	applyToAll bool,
	vehicleIDs []uuid.UUID,
	priceType PriceType,
	priceValue float64,
	createdAt time.Time,
) (*Rule, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyRuleName
	}
	if !priceType.IsValid() {
		return nil, ErrInvalidPriceType
	}
	if priceValue <= 0 {
		return nil, ErrInvalidPriceValue
	}
	if priceType == PriceTypeMultiplier && priceValue > MaxMultiplier {
		return nil, ErrInvalidPriceValue
	}
	if !applyToAll && len(vehicleIDs) == 0 {
		return nil, ErrEmptyVehicleScope
	}

	return ReconstructRule(uuid.New(), name, period, applyToAll, vehicleIDs, priceType, priceValue, createdAt, createdAt), nil
}

func ReconstructRule(
	id uuid.UUID,
	name string,
	period booking.DateRange,
	applyToAll bool,
	vehicleIDs []uuid.UUID,
	priceType PriceType,
	priceValue float64,
	createdAt, updatedAt time.Time,
) *Rule {
	scope := make(map[uuid.UUID]struct{}, len(vehicleIDs))
	for _, id := range vehicleIDs {
		scope[id] = struct{}{}
	}
	return &Rule{
		id:         id,
		name:       name,
		period:     period,
		applyToAll: applyToAll,
		vehicleIDs: scope,
		priceType:  priceType,
		priceValue: priceValue,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// AppliesTo reports whether the rule governs the given vehicle on the given
// day: the day falls inside the rule's period and the vehicle is in scope.
func (r *Rule) AppliesTo(vehicleID uuid.UUID, day time.Time) bool {
	if !r.period.Contains(day) {
		return false
	}
	if r.applyToAll {
		return true
	}
	_, ok := r.vehicleIDs[vehicleID]
	return ok
}

func (r *Rule) ID() uuid.UUID             { return r.id }
func (r *Rule) Name() string              { return r.name }
func (r *Rule) Period() booking.DateRange { return r.period }
func (r *Rule) ApplyToAll() bool          { return r.applyToAll }
func (r *Rule) PriceType() PriceType      { return r.priceType }
func (r *Rule) PriceValue() float64       { return r.priceValue }
func (r *Rule) CreatedAt() time.Time      { return r.createdAt }
func (r *Rule) UpdatedAt() time.Time      { return r.updatedAt }

func (r *Rule) VehicleIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.vehicleIDs))
	for id := range r.vehicleIDs {
		ids = append(ids, id)
	}
	return ids
}
