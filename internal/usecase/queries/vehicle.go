package queries

import (
	"context"

	"fleet-rental/internal/infra"
	"fleet-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVehicleViewNotFound = errs.New("vehicle not found")

type VehicleQueries interface {
	List(ctx context.Context) ([]*VehicleView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error)
}

type vehicleQueriesImpl struct {
	store VehicleReadStore
}

func NewVehicleQueries(store VehicleReadStore) VehicleQueries {
	return &vehicleQueriesImpl{store: store}
}

func (q *vehicleQueriesImpl) List(ctx context.Context) ([]*VehicleView, error) {
	return q.store.FindAll(ctx)
}

func (q *vehicleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VehicleView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleViewNotFound
		}
		return nil, err
	}
	return view, nil
}
