package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fleet-rental/internal/domain/booking"
	"fleet-rental/internal/domain/pricing"
	"fleet-rental/internal/infra"
	"fleet-rental/internal/pkg/clock"
	"fleet-rental/internal/pkg/config"
	"fleet-rental/internal/pkg/errs"
	"fleet-rental/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrVehicleNotFound         = errs.New("vehicle not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrPastDateRange           = errs.New("date range starts in the past")
	ErrBookingConflict         = errs.New("vehicle is not available for the requested dates")
	ErrInvalidTransition       = errs.New("booking status does not allow this transition")
	ErrNotBookingOwner         = errs.New("booking belongs to another user")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateBookingParams struct {
	VehicleID uuid.UUID
	UserID    uuid.UUID
	Period    booking.DateRange
	// Confirmed creates the booking directly in confirmed status (operator
	// path); the default is a pending payment hold.
	Confirmed bool
}

type CreateBookingResult struct {
	BookingID  uuid.UUID
	Status     string
	TotalCents int64
	Days       []queries.DayPriceView
}

type BookingCommands interface {
	Create(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
	// ConfirmPayment and FailPayment are driven by the external payment
	// provider's webhook.
	ConfirmPayment(ctx context.Context, bookingID uuid.UUID) error
	FailPayment(ctx context.Context, bookingID uuid.UUID) error
	Cancel(ctx context.Context, bookingID, actorID uuid.UUID) error
	Complete(ctx context.Context, bookingID uuid.UUID) error
	ExpireStalePending(ctx context.Context) (int64, error)
}

type bookingCommandsImpl struct {
	db          *pgxpool.Pool
	vehicleRepo VehicleRepository
	bookingRepo BookingRepository
	ruleReader  RuleSnapshotReader
	publisher   EventPublisher
	clock       clock.Clock
	cfg         config.BookingConfig
}

func NewBookingCommands(
	db *pgxpool.Pool,
	vehicleRepo VehicleRepository,
	bookingRepo BookingRepository,
	ruleReader RuleSnapshotReader,
	publisher EventPublisher,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		db:          db,
		vehicleRepo: vehicleRepo,
		bookingRepo: bookingRepo,
		ruleReader:  ruleReader,
		publisher:   publisher,
		clock:       clk,
		cfg:         cfg.Booking,
	}
}

// Create is the booking finalizer. The total is always recomputed from the
// current rule snapshot inside the transaction; a caller-supplied price is
// never accepted. The availability re-check and the insert are atomic: the
// vehicle row is locked for the duration, and the bookings_no_overlap
// exclusion constraint backstops anything the check misses.
func (c *bookingCommandsImpl) Create(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	if params.Period.Start().Before(today(c.clock)) {
		return nil, ErrPastDateRange
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	veh, err := c.vehicleRepo.FindByIDForUpdate(ctx, tx, params.VehicleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	blocked, err := c.bookingRepo.ExistsOverlapping(ctx, tx, veh.ID, params.Period, booking.BlockingStatuses)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if blocked {
		return nil, ErrBookingConflict
	}

	rules, err := c.ruleReader.OverlappingRules(ctx, tx, params.Period)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	quote := pricing.ResolveDailyPrices(veh.ID, veh.BasePriceCents, params.Period, rules)
	total, err := booking.NewMoney(quote.TotalCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	status := booking.StatusPending
	if params.Confirmed {
		status = booking.StatusConfirmed
	}

	entity, err := booking.NewBooking(params.VehicleID, params.UserID, params.Period, total, status)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	bookingID, err := c.bookingRepo.Create(ctx, tx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrBookingConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if status == booking.StatusConfirmed {
		c.publish(ctx, BookingEvent{
			Type:       EventBookingConfirmed,
			BookingID:  bookingID,
			VehicleID:  params.VehicleID,
			UserID:     params.UserID,
			TotalCents: quote.TotalCents,
			OccurredAt: c.clock.Now(),
		})
	}

	days := make([]queries.DayPriceView, len(quote.Days))
	for i, d := range quote.Days {
		days[i] = queries.DayPriceView{
			Date:           d.Date.Format(booking.DateLayout),
			PriceCents:     d.PriceCents,
			IsSpecialPrice: d.IsSpecialPrice,
		}
	}

	return &CreateBookingResult{
		BookingID:  bookingID,
		Status:     status.String(),
		TotalCents: quote.TotalCents,
		Days:       days,
	}, nil
}

func (c *bookingCommandsImpl) ConfirmPayment(ctx context.Context, bookingID uuid.UUID) error {
	return c.transition(ctx, bookingID, booking.StatusConfirmed, uuid.Nil)
}

func (c *bookingCommandsImpl) FailPayment(ctx context.Context, bookingID uuid.UUID) error {
	return c.transition(ctx, bookingID, booking.StatusCancelled, uuid.Nil)
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return c.transition(ctx, bookingID, booking.StatusCancelled, actorID)
}

func (c *bookingCommandsImpl) Complete(ctx context.Context, bookingID uuid.UUID) error {
	return c.transition(ctx, bookingID, booking.StatusCompleted, uuid.Nil)
}

// transition loads the booking, validates the move against the domain
// state machine, then applies it with a compare-and-set on the current
// status so a concurrent transition loses cleanly.
func (c *bookingCommandsImpl) transition(ctx context.Context, bookingID uuid.UUID, next booking.Status, requiredOwner uuid.UUID) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	snap, err := c.bookingRepo.FindByID(ctx, tx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if requiredOwner != uuid.Nil && snap.UserID != requiredOwner {
		return ErrNotBookingOwner
	}
	if !snap.Status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}

	if err := c.bookingRepo.UpdateStatus(ctx, tx, bookingID, snap.Status, next); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Lost a race with another transition.
			return ErrInvalidTransition
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if evtType := eventTypeFor(next); evtType != "" {
		c.publish(ctx, BookingEvent{
			Type:       evtType,
			BookingID:  snap.ID,
			VehicleID:  snap.VehicleID,
			UserID:     snap.UserID,
			TotalCents: snap.TotalPriceCents,
			OccurredAt: c.clock.Now(),
		})
	}
	return nil
}

// ExpireStalePending cancels pending bookings whose payment hold outlived
// BOOKING_PENDING_TTL, releasing their dates.
func (c *bookingCommandsImpl) ExpireStalePending(ctx context.Context) (int64, error) {
	cutoff := c.clock.Now().Add(-c.cfg.PendingTTL)
	n, err := c.bookingRepo.CancelStalePending(ctx, c.db, cutoff)
	if err != nil {
		return 0, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return n, nil
}

func (c *bookingCommandsImpl) publish(ctx context.Context, evt BookingEvent) {
	if err := c.publisher.PublishBookingEvent(ctx, evt); err != nil {
		slog.Warn("failed to publish booking event",
			"type", evt.Type,
			"booking_id", evt.BookingID.String(),
			"error", err.Error())
	}
}

func eventTypeFor(status booking.Status) string {
	switch status {
	case booking.StatusConfirmed:
		return EventBookingConfirmed
	case booking.StatusCancelled:
		return EventBookingCancelled
	default:
		return ""
	}
}

func today(clk clock.Clock) time.Time {
	y, m, d := clk.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err.Error())
	}
}
