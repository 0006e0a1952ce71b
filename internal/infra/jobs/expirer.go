package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleet-rental/internal/pkg/config"
	"fleet-rental/internal/pkg/errs"
	"fleet-rental/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// Expirer periodically cancels pending bookings that held their dates past
// the configured TTL without a payment confirmation.
type Expirer struct {
	cron     *cron.Cron
	bookings commands.BookingCommands
	cfg      config.BookingConfig
}

func NewExpirer(bookings commands.BookingCommands, cfg config.Config) *Expirer {
	return &Expirer{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		bookings: bookings,
		cfg:      cfg.Booking,
	}
}

func (e *Expirer) Start() error {
	if !e.cfg.ExpirerEnabled {
		slog.Info("booking expirer disabled")
		return nil
	}
	if _, err := e.cron.AddFunc(e.cfg.ExpirerSpec, e.run); err != nil {
		return errs.Wrap(err, "failed to register booking expirer job")
	}
	e.cron.Start()
	slog.Info("booking expirer started", "spec", e.cfg.ExpirerSpec, "pending_ttl", e.cfg.PendingTTL.String())
	return nil
}

func (e *Expirer) Stop() {
	<-e.cron.Stop().Done()
}

func (e *Expirer) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := e.bookings.ExpireStalePending(ctx)
	if err != nil {
		slog.Error("failed to expire stale pending bookings", "error", err.Error())
		return
	}
	if n > 0 {
		slog.Info("expired stale pending bookings", "count", n)
	}
}
