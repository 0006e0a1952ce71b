//go:build unit || e2e

package authtest

import (
	"testing"

	"fleet-rental/internal/pkg/config"
	"fleet-rental/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs a token with the test secret so e2e requests pass the
// auth middleware without an external identity provider.
func IssueToken(t *testing.T, cfg config.Config, userID uuid.UUID, role jwt.Role) string {
	t.Helper()

	service := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
