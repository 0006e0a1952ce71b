//go:build unit

package queriesmock

import (
	"context"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockListingQueries struct {
	mock.Mock
}

func (m *MockListingQueries) Search(ctx context.Context, period booking.DateRange) ([]*queries.VehicleListingView, error) {
	args := m.Called(ctx, period)
	if result := args.Get(0); result != nil {
		return result.([]*queries.VehicleListingView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBookingQueries struct {
	mock.Mock
}

func (m *MockBookingQueries) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, actor, id)
	if result := args.Get(0); result != nil {
		return result.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingQueries) GetByIDSystem(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	args := m.Called(ctx, id)
	if result := args.Get(0); result != nil {
		return result.(*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	args := m.Called(ctx, userID)
	if result := args.Get(0); result != nil {
		return result.([]*queries.BookingView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockVehicleQueries struct {
	mock.Mock
}

func (m *MockVehicleQueries) List(ctx context.Context) ([]*queries.VehicleView, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		return result.([]*queries.VehicleView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVehicleQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.VehicleView, error) {
	args := m.Called(ctx, id)
	if result := args.Get(0); result != nil {
		return result.(*queries.VehicleView), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRuleQueries struct {
	mock.Mock
}

func (m *MockRuleQueries) List(ctx context.Context) ([]*queries.RuleView, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		return result.([]*queries.RuleView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRuleQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.RuleView, error) {
	args := m.Called(ctx, id)
	if result := args.Get(0); result != nil {
		return result.(*queries.RuleView), args.Error(1)
	}
	return nil, args.Error(1)
}
