package components

import (
	"context"

	"hotelres/internal/jobs"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewHoldCleanupJob,
	),
	fx.Invoke(registerHoldCleanup),
)

func registerHoldCleanup(lc fx.Lifecycle, job *jobs.HoldCleanupJob) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return job.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return job.Stop(ctx)
		},
	})
}
