package queries

import (
	"context"

	"fleet-rental/internal/infra"
	"fleet-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingViewNotFound = errs.New("booking not found")

type BookingQueries interface {
	// GetByID returns the booking only to its owner; operators use
	// GetByIDSystem.
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.UserID != actor {
		// Ownership mismatch is indistinguishable from absence.
		return nil, ErrBookingViewNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingViewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	return q.store.FindByUserID(ctx, userID)
}
