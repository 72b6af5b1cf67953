package workers

import (
	"context"
	"log/slog"
	"time"
)

type Sweeper interface {
	SweepVibes(ctx context.Context) (int, error)
	SweepSOS(ctx context.Context) (int, error)
}

// LifecycleWorker runs both migration sweeps on a fixed interval. The first
// pass fires immediately so reports that expired while the process was down
// are archived without waiting a full cycle.
type LifecycleWorker struct {
	sweeper  Sweeper
	logger   *slog.Logger
	interval time.Duration
}

func NewLifecycleWorker(sweeper Sweeper, logger *slog.Logger, interval time.Duration) *LifecycleWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &LifecycleWorker{
		sweeper:  sweeper,
		logger:   logger,
		interval: interval,
	}
}

func (w *LifecycleWorker) Run(ctx context.Context) {
	w.logger.Info("lifecycle worker started", slog.Duration("interval", w.interval))

	w.sweep(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("lifecycle worker stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *LifecycleWorker) sweep(ctx context.Context) {
	start := time.Now()

	vibes, err := w.sweeper.SweepVibes(ctx)
	if err != nil {
		w.logger.Error("vibe sweep failed", slog.Any("error", err))
	}

	sos, err := w.sweeper.SweepSOS(ctx)
	if err != nil {
		w.logger.Error("sos sweep failed", slog.Any("error", err))
	}

	if vibes > 0 || sos > 0 {
		w.logger.Info("lifecycle sweep finished",
			slog.Int("vibes", vibes),
			slog.Int("sos", sos),
			slog.Duration("took", time.Since(start)),
		)
	}
}
