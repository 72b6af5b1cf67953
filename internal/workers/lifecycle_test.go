package workers_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"hyperapp/internal/workers"
)

type countingSweeper struct {
	vibes atomic.Int32
	sos   atomic.Int32
}

func (c *countingSweeper) SweepVibes(context.Context) (int, error) {
	c.vibes.Add(1)
	return 0, nil
}

func (c *countingSweeper) SweepSOS(context.Context) (int, error) {
	c.sos.Add(1)
	return 0, nil
}

func TestLifecycleWorker_SweepsImmediatelyAndStopsOnCancel(t *testing.T) {
	t.Parallel()

	sweeper := &countingSweeper{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	w := workers.NewLifecycleWorker(sweeper, logger, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	// The first sweep fires before the first tick.
	deadline := time.After(5 * time.Second)
	for sweeper.vibes.Load() == 0 || sweeper.sos.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("initial sweep never ran")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop on cancel")
	}

	if sweeper.vibes.Load() != 1 || sweeper.sos.Load() != 1 {
		t.Fatalf("expected exactly one sweep with an hour interval, got vibes=%d sos=%d",
			sweeper.vibes.Load(), sweeper.sos.Load())
	}
}
