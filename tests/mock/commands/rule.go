//go:build unit

package commandsmock

import (
	"context"

	"fleet-rental/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRuleCommands struct {
	mock.Mock
}

func (m *MockRuleCommands) Create(ctx context.Context, params commands.RuleParams) (uuid.UUID, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockRuleCommands) Update(ctx context.Context, id uuid.UUID, params commands.RuleParams) error {
	return m.Called(ctx, id, params).Error(0)
}

func (m *MockRuleCommands) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
