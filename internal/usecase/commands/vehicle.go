package commands

import (
	"context"

	"fleet-rental/internal/domain/vehicle"
	"fleet-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidVehicle = errs.New("invalid vehicle")

type VehicleParams struct {
	Name           string
	BasePriceCents int64
}

// VehicleCommands registers fleet vehicles. The domain factory is the only
// way in, so a vehicle with an empty name or a non-positive base rate never
// reaches the pricing resolver.
type VehicleCommands interface {
	Create(ctx context.Context, params VehicleParams) (uuid.UUID, error)
}

type vehicleCommandsImpl struct {
	db          *pgxpool.Pool
	vehicleRepo VehicleRepository
}

func NewVehicleCommands(db *pgxpool.Pool, vehicleRepo VehicleRepository) VehicleCommands {
	return &vehicleCommandsImpl{
		db:          db,
		vehicleRepo: vehicleRepo,
	}
}

func (c *vehicleCommandsImpl) Create(ctx context.Context, params VehicleParams) (uuid.UUID, error) {
	veh, err := vehicle.NewVehicle(uuid.Nil, params.Name, params.BasePriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidVehicle)
	}

	id, err := c.vehicleRepo.Create(ctx, c.db, veh)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}
