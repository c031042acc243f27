package outbox

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler runs the relay on a fixed interval. A run still in progress when the next tick fires
// causes that tick to be skipped.
type Scheduler struct {
	sched  gocron.Scheduler
	cancel context.CancelFunc
}

func NewScheduler(relay *Relay, interval time.Duration) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if _, err := relay.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("outbox relay run failed", "error", err.Error())
			}
		}),
		gocron.WithName("outbox-relay"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = sched.Shutdown()
		return nil, err
	}

	return &Scheduler{sched: sched, cancel: cancel}, nil
}

func (s *Scheduler) Start() {
	s.sched.Start()
	slog.Info("outbox relay started")
}

func (s *Scheduler) Stop() error {
	s.cancel()
	return s.sched.Shutdown()
}
