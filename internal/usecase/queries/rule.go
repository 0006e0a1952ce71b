package queries

import (
	"context"

	"fleet-rental/internal/infra"
	"fleet-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRuleViewNotFound = errs.New("pricing rule not found")

type RuleQueries interface {
	List(ctx context.Context) ([]*RuleView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*RuleView, error)
}

type ruleQueriesImpl struct {
	store RuleReadStore
}

func NewRuleQueries(store RuleReadStore) RuleQueries {
	return &ruleQueriesImpl{store: store}
}

func (q *ruleQueriesImpl) List(ctx context.Context) ([]*RuleView, error) {
	return q.store.FindAll(ctx)
}

func (q *ruleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RuleView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRuleViewNotFound
		}
		return nil, err
	}
	return view, nil
}
