//go:build unit

package commandsmock

import (
	"context"

	"fleet-rental/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBookingCommands struct {
	mock.Mock
}

func (m *MockBookingCommands) Create(ctx context.Context, params commands.CreateBookingParams) (*commands.CreateBookingResult, error) {
	args := m.Called(ctx, params)
	if result := args.Get(0); result != nil {
		return result.(*commands.CreateBookingResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingCommands) ConfirmPayment(ctx context.Context, bookingID uuid.UUID) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *MockBookingCommands) FailPayment(ctx context.Context, bookingID uuid.UUID) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *MockBookingCommands) Cancel(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return m.Called(ctx, bookingID, actorID).Error(0)
}

func (m *MockBookingCommands) Complete(ctx context.Context, bookingID uuid.UUID) error {
	return m.Called(ctx, bookingID).Error(0)
}

func (m *MockBookingCommands) ExpireStalePending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
