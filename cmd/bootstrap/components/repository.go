package components

import (
	"fleet-rental/internal/infra/db"
	"fleet-rental/internal/infra/readstore"
	repo_impl "fleet-rental/internal/infra/repository"
	"fleet-rental/internal/usecase/commands"
	"fleet-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write-side repositories run inside the caller's transaction.
		fx.Annotate(
			repo_impl.NewVehicleRepository,
			fx.As(new(commands.VehicleRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewRuleRepository,
			fx.As(new(commands.RuleRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewVehicleReadStore,
			fx.As(new(queries.VehicleReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// The rule store serves both the listing query and the booking
		// finalizer's in-transaction snapshot.
		fx.Annotate(
			readstore.NewRuleReadStore,
			fx.As(new(queries.RuleReadStore)),
			fx.As(new(commands.RuleSnapshotReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
