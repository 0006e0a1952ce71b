//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestVehicle(t *testing.T, pool *pgxpool.Pool, name string, basePriceCents int64) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO vehicles (id, name, base_price_per_day_cents) VALUES ($1, $2, $3)",
		vehicleID, name, basePriceCents)
	require.NoError(t, err)
	return vehicleID
}

func CreateTestRule(t *testing.T, pool *pgxpool.Pool, name, startDate, endDate, priceType string, priceValue float64, createdAt time.Time, vehicleIDs ...uuid.UUID) uuid.UUID {
	t.Helper()

	ruleID := uuid.New()
	applyToAll := len(vehicleIDs) == 0
	_, err := pool.Exec(context.Background(),
		`INSERT INTO special_pricing_rules (id, name, start_date, end_date, apply_to_all, price_type, price_value, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		ruleID, name, startDate, endDate, applyToAll, priceType, priceValue, createdAt)
	require.NoError(t, err)

	for _, vehicleID := range vehicleIDs {
		_, err := pool.Exec(context.Background(),
			"INSERT INTO rule_vehicles (rule_id, vehicle_id) VALUES ($1, $2)", ruleID, vehicleID)
		require.NoError(t, err)
	}
	return ruleID
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		"TRUNCATE bookings, rule_vehicles, special_pricing_rules, vehicles CASCADE")
	return err
}
