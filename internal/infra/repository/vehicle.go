package repository

import (
	"context"
	"errors"

	"fleet-rental/internal/domain/vehicle"
	"fleet-rental/internal/infra"
	"fleet-rental/internal/infra/db"
	"fleet-rental/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VehicleRepository struct{}

func NewVehicleRepository() *VehicleRepository {
	return &VehicleRepository{}
}

const insertVehicleSQL = `
INSERT INTO vehicles (id, name, base_price_per_day_cents)
VALUES ($1, $2, $3)
RETURNING id`

func (r *VehicleRepository) Create(ctx context.Context, dbtx db.DBTX, v *vehicle.Vehicle) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertVehicleSQL, v.ID(), v.Name(), v.BasePricePerDayCents()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert vehicle", err)
	}
	return id, nil
}

const findVehicleForUpdateSQL = `
SELECT id, name, base_price_per_day_cents
FROM vehicles
WHERE id = $1
FOR UPDATE`

func (r *VehicleRepository) FindByIDForUpdate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*commands.VehicleSnapshot, error) {
	var snap commands.VehicleSnapshot
	err := dbtx.QueryRow(ctx, findVehicleForUpdateSQL, id).Scan(&snap.ID, &snap.Name, &snap.BasePriceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle for update", err)
	}
	return &snap, nil
}
