//go:build unit

package commandsmock

import (
	"context"

	"fleet-rental/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockVehicleCommands struct {
	mock.Mock
}

func (m *MockVehicleCommands) Create(ctx context.Context, params commands.VehicleParams) (uuid.UUID, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
