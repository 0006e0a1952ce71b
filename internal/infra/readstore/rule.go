package readstore

import (
	"context"
	"errors"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/pricing"
	"fleet-rental/internal/infra"
	"fleet-rental/internal/infra/db"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RuleReadStore struct {
	db db.DBTX
}

func NewRuleReadStore(dbtx db.DBTX) *RuleReadStore {
	return &RuleReadStore{db: dbtx}
}

const ruleColumns = `r.id, r.name, r.start_date, r.end_date, r.apply_to_all, r.price_type, r.price_value, r.created_at, r.updated_at,
COALESCE(array_agg(rv.vehicle_id) FILTER (WHERE rv.vehicle_id IS NOT NULL), '{}')`

const findOverlappingRulesSQL = `
SELECT ` + ruleColumns + `
FROM special_pricing_rules r
LEFT JOIN rule_vehicles rv ON rv.rule_id = r.id
WHERE r.start_date <= $2 AND r.end_date >= $1
GROUP BY r.id
ORDER BY r.created_at, r.id`

// FindOverlapping loads the rules whose period overlaps the requested one.
// Precedence among them is the resolver's job, not the store's.
func (r *RuleReadStore) FindOverlapping(ctx context.Context, period booking.DateRange) ([]*pricing.Rule, error) {
	return r.overlappingRules(ctx, r.db, period)
}

// OverlappingRules is the same query bound to a caller-supplied transaction,
// used by the booking finalizer so the price snapshot is taken under the
// transaction's visibility.
func (r *RuleReadStore) OverlappingRules(ctx context.Context, dbtx db.DBTX, period booking.DateRange) ([]*pricing.Rule, error) {
	return r.overlappingRules(ctx, dbtx, period)
}

func (r *RuleReadStore) overlappingRules(ctx context.Context, dbtx db.DBTX, period booking.DateRange) ([]*pricing.Rule, error) {
	rows, err := dbtx.Query(ctx, findOverlappingRulesSQL, period.Start(), period.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping rules", err)
	}
	defer rows.Close()

	var rules []*pricing.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rule row", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rule rows", err)
	}
	return rules, nil
}

const findAllRulesSQL = `
SELECT ` + ruleColumns + `
FROM special_pricing_rules r
LEFT JOIN rule_vehicles rv ON rv.rule_id = r.id
GROUP BY r.id
ORDER BY r.created_at, r.id`

func (r *RuleReadStore) FindAll(ctx context.Context) ([]*queries.RuleView, error) {
	rows, err := r.db.Query(ctx, findAllRulesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rules", err)
	}
	defer rows.Close()

	var views []*queries.RuleView
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rule row", err)
		}
		views = append(views, toRuleView(rule))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read rule rows", err)
	}
	return views, nil
}

const findRuleByIDSQL = `
SELECT ` + ruleColumns + `
FROM special_pricing_rules r
LEFT JOIN rule_vehicles rv ON rv.rule_id = r.id
WHERE r.id = $1
GROUP BY r.id`

func (r *RuleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RuleView, error) {
	rule, err := scanRule(r.db.QueryRow(ctx, findRuleByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("rule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rule by ID", err)
	}
	return toRuleView(rule), nil
}

func scanRule(row pgx.Row) (*pricing.Rule, error) {
	var (
		id                   uuid.UUID
		name                 string
		start, end           time.Time
		applyToAll           bool
		priceType            string
		priceValue           float64
		createdAt, updatedAt time.Time
		vehicleIDs           []uuid.UUID
	)
	err := row.Scan(&id, &name, &start, &end, &applyToAll, &priceType, &priceValue, &createdAt, &updatedAt, &vehicleIDs)
	if err != nil {
		return nil, err
	}

	period, err := booking.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return pricing.ReconstructRule(id, name, period, applyToAll, vehicleIDs, pricing.PriceType(priceType), priceValue, createdAt, updatedAt), nil
}

func toRuleView(rule *pricing.Rule) *queries.RuleView {
	return &queries.RuleView{
		ID:         rule.ID(),
		Name:       rule.Name(),
		StartDate:  rule.Period().Start().Format(booking.DateLayout),
		EndDate:    rule.Period().End().Format(booking.DateLayout),
		ApplyToAll: rule.ApplyToAll(),
		VehicleIDs: rule.VehicleIDs(),
		PriceType:  string(rule.PriceType()),
		PriceValue: rule.PriceValue(),
		CreatedAt:  rule.CreatedAt(),
		UpdatedAt:  rule.UpdatedAt(),
	}
}
