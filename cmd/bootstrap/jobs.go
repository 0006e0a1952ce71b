package bootstrap

import (
	"context"

	"fleet-rental/internal/infra/jobs"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewExpirer,
	),
	fx.Invoke(startExpirer),
)

func startExpirer(lc fx.Lifecycle, expirer *jobs.Expirer) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return expirer.Start()
		},
		OnStop: func(_ context.Context) error {
			expirer.Stop()
			return nil
		},
	})
}
