//go:build unit

package vehicle

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	t.Run("valid vehicle", func(t *testing.T) {
		v, err := NewVehicle(uuid.Nil, "Sedan", 10000)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, v.ID())
		assert.Equal(t, "Sedan", v.Name())
		assert.Equal(t, int64(10000), v.BasePricePerDayCents())
	})

	t.Run("keeps a provided id", func(t *testing.T) {
		id := uuid.New()
		v, err := NewVehicle(id, "Sedan", 10000)
		require.NoError(t, err)
		assert.Equal(t, id, v.ID())
	})

	tests := []struct {
		name           string
		vehicleName    string
		basePriceCents int64
		wantErr        error
	}{
		{
			name:           "empty name",
			vehicleName:    "",
			basePriceCents: 10000,
			wantErr:        ErrEmptyName,
		},
		{
			name:           "whitespace-only name",
			vehicleName:    "   ",
			basePriceCents: 10000,
			wantErr:        ErrEmptyName,
		},
		{
			name:           "zero base price",
			vehicleName:    "Sedan",
			basePriceCents: 0,
			wantErr:        ErrNonPositivePrice,
		},
		{
			name:           "negative base price",
			vehicleName:    "Sedan",
			basePriceCents: -100,
			wantErr:        ErrNonPositivePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewVehicle(uuid.Nil, tt.vehicleName, tt.basePriceCents)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
