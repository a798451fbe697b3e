package jobs

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"hotelres/internal/pkg/config"
	"hotelres/internal/usecase/commands"
)

// HoldCleanupJob periodically releases expired holds so their capacity
// returns to the pool. Sweeps are single-flight: if a tick fires while the
// previous sweep is still running, the tick is skipped.
type HoldCleanupJob struct {
	holds    commands.HoldCommands
	interval time.Duration

	running atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

func NewHoldCleanupJob(holds commands.HoldCommands, cfg config.Config) *HoldCleanupJob {
	return &HoldCleanupJob{
		holds:    holds,
		interval: cfg.Hold.SweepInterval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (j *HoldCleanupJob) Start(ctx context.Context) error {
	go j.loop()
	slog.Info("hold cleanup job started", "interval", j.interval.String())
	return nil
}

func (j *HoldCleanupJob) Stop(ctx context.Context) error {
	close(j.stop)
	select {
	case <-j.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	slog.Info("hold cleanup job stopped")
	return nil
}

func (j *HoldCleanupJob) loop() {
	defer close(j.done)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.Sweep(context.Background())
		case <-j.stop:
			return
		}
	}
}

// Sweep runs one expired-hold sweep. Returns the number of holds released,
// or -1 when skipped because a sweep is already in flight.
func (j *HoldCleanupJob) Sweep(ctx context.Context) int {
	if !j.running.CompareAndSwap(false, true) {
		slog.Debug("hold sweep already in flight, skipping tick")
		return -1
	}
	defer j.running.Store(false)

	released, err := j.holds.ReleaseExpired(ctx)
	if err != nil {
		slog.Error("hold sweep failed", "error", err.Error())
		return 0
	}
	if released > 0 {
		slog.Info("released expired holds", "count", released)
	}
	return released
}
