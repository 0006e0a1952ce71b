package vehicle

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("vehicle name cannot be empty")
	ErrNonPositivePrice = errors.New("base price per day must be positive")
)

// Vehicle carries only what pricing and availability need: identity and the
// base daily rate. Display attributes live in the read models.
type Vehicle struct {
	id                   uuid.UUID
	name                 string
	basePricePerDayCents int64
}

func NewVehicle(id uuid.UUID, name string, basePricePerDayCents int64) (*Vehicle, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if basePricePerDayCents <= 0 {
		return nil, ErrNonPositivePrice
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Vehicle{
		id:                   id,
		name:                 name,
		basePricePerDayCents: basePricePerDayCents,
	}, nil
}

func (v *Vehicle) ID() uuid.UUID               { return v.id }
func (v *Vehicle) Name() string                { return v.name }
func (v *Vehicle) BasePricePerDayCents() int64 { return v.basePricePerDayCents }
