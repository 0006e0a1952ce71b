package readstore

import (
	"context"
	"errors"

	"fleet-rental/internal/infra"
	"fleet-rental/internal/infra/db"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VehicleReadStore struct {
	db db.DBTX
}

func NewVehicleReadStore(dbtx db.DBTX) *VehicleReadStore {
	return &VehicleReadStore{db: dbtx}
}

const findAllVehiclesSQL = `
SELECT id, name, base_price_per_day_cents, created_at, updated_at
FROM vehicles
ORDER BY created_at, id`

func (r *VehicleReadStore) FindAll(ctx context.Context) ([]*queries.VehicleView, error) {
	rows, err := r.db.Query(ctx, findAllVehiclesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vehicles", err)
	}
	defer rows.Close()

	var views []*queries.VehicleView
	for rows.Next() {
		var v queries.VehicleView
		if err := rows.Scan(&v.ID, &v.Name, &v.BasePriceCents, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan vehicle row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vehicle rows", err)
	}
	return views, nil
}

const findVehicleByIDSQL = `
SELECT id, name, base_price_per_day_cents, created_at, updated_at
FROM vehicles
WHERE id = $1`

func (r *VehicleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	var v queries.VehicleView
	err := r.db.QueryRow(ctx, findVehicleByIDSQL, id).Scan(&v.ID, &v.Name, &v.BasePriceCents, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("vehicle not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find vehicle by ID", err)
	}
	return &v, nil
}
