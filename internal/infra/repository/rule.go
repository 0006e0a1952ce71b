package repository

import (
	"context"

	"fleet-rental/internal/domain/pricing"
	"fleet-rental/internal/infra"
	"fleet-rental/internal/infra/db"

	"github.com/google/uuid"
)

type RuleRepository struct{}

func NewRuleRepository() *RuleRepository {
	return &RuleRepository{}
}

const createRuleSQL = `
INSERT INTO special_pricing_rules (id, name, start_date, end_date, apply_to_all, price_type, price_value, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING id`

const insertRuleVehicleSQL = `
INSERT INTO rule_vehicles (rule_id, vehicle_id) VALUES ($1, $2)`

func (r *RuleRepository) Create(ctx context.Context, dbtx db.DBTX, rule *pricing.Rule) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createRuleSQL,
		rule.ID(),
		rule.Name(),
		rule.Period().Start(),
		rule.Period().End(),
		rule.ApplyToAll(),
		string(rule.PriceType()),
		rule.PriceValue(),
		rule.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pricing rule", err)
	}

	if err := r.replaceScope(ctx, dbtx, rule); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

const updateRuleSQL = `
UPDATE special_pricing_rules
SET name = $2, start_date = $3, end_date = $4, apply_to_all = $5, price_type = $6, price_value = $7, updated_at = $8
WHERE id = $1`

// Update rewrites everything except created_at, which carries the rule's
// precedence.
func (r *RuleRepository) Update(ctx context.Context, dbtx db.DBTX, rule *pricing.Rule) error {
	tag, err := dbtx.Exec(ctx, updateRuleSQL,
		rule.ID(),
		rule.Name(),
		rule.Period().Start(),
		rule.Period().End(),
		rule.ApplyToAll(),
		string(rule.PriceType()),
		rule.PriceValue(),
		rule.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update pricing rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing rule not found", nil, infra.KindNotFound)
	}

	if _, err := dbtx.Exec(ctx, `DELETE FROM rule_vehicles WHERE rule_id = $1`, rule.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear rule vehicle scope", err)
	}
	return r.replaceScope(ctx, dbtx, rule)
}

func (r *RuleRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM special_pricing_rules WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pricing rule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pricing rule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RuleRepository) replaceScope(ctx context.Context, dbtx db.DBTX, rule *pricing.Rule) error {
	if rule.ApplyToAll() {
		return nil
	}
	for _, vehicleID := range rule.VehicleIDs() {
		if _, err := dbtx.Exec(ctx, insertRuleVehicleSQL, rule.ID(), vehicleID); err != nil {
			return infra.WrapRepoErr("failed to link rule to vehicle", err)
		}
	}
	return nil
}
