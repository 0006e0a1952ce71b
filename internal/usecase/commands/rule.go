package commands

import (
	"context"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/pricing"
	"fleet-rental/internal/infra"
	"fleet-rental/internal/pkg/clock"
	"fleet-rental/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrRuleNotFound = errs.New("pricing rule not found")
	ErrInvalidRule  = errs.New("invalid pricing rule")
)

type RuleParams struct {
	Name       string
	Period     booking.DateRange
	ApplyToAll bool
	VehicleIDs []uuid.UUID
	PriceType  string
	PriceValue float64
}

// RuleCommands manages special pricing rules. Validation lives in
// pricing.NewRule so an invalid priceType/priceValue combination is
// rejected here and can never reach the resolver. New rules take effect
// immediately for any later pricing computation.
type RuleCommands interface {
	Create(ctx context.Context, params RuleParams) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, params RuleParams) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ruleCommandsImpl struct {
	db       *pgxpool.Pool
	ruleRepo RuleRepository
	clock    clock.Clock
}

func NewRuleCommands(db *pgxpool.Pool, ruleRepo RuleRepository, clk clock.Clock) RuleCommands {
	return &ruleCommandsImpl{
		db:       db,
		ruleRepo: ruleRepo,
		clock:    clk,
	}
}

func (c *ruleCommandsImpl) Create(ctx context.Context, params RuleParams) (uuid.UUID, error) {
	rule, err := pricing.NewRule(
		params.Name,
		params.Period,
		params.ApplyToAll,
		params.VehicleIDs,
		pricing.PriceType(params.PriceType),
		params.PriceValue,
		c.clock.Now(),
	)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidRule)
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	id, err := c.ruleRepo.Create(ctx, tx, rule)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return id, nil
}

func (c *ruleCommandsImpl) Update(ctx context.Context, id uuid.UUID, params RuleParams) error {
	// Revalidate the full rule; updatedAt moves, createdAt (and with it the
	// rule's precedence) is preserved by the repository.
	rule, err := pricing.NewRule(
		params.Name,
		params.Period,
		params.ApplyToAll,
		params.VehicleIDs,
		pricing.PriceType(params.PriceType),
		params.PriceValue,
		c.clock.Now(),
	)
	if err != nil {
		return errs.Mark(err, ErrInvalidRule)
	}
	rule = pricing.ReconstructRule(
		id, rule.Name(), rule.Period(), rule.ApplyToAll(), rule.VehicleIDs(),
		rule.PriceType(), rule.PriceValue(), rule.CreatedAt(), c.clock.Now(),
	)

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if err := c.ruleRepo.Update(ctx, tx, rule); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRuleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *ruleCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if err := c.ruleRepo.Delete(ctx, tx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRuleNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
