package components

import (
	"context"

	"booth-reservation/internal/infra/messaging"
	"booth-reservation/internal/infra/outbox"
	"booth-reservation/internal/pkg/clock"
	"booth-reservation/internal/pkg/config"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewPublisher,
		NewRelay,
	),
	fx.Invoke(StartRelay),
)

type closingPublisher interface {
	outbox.Publisher
	Close() error
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config) outbox.Publisher {
	var p closingPublisher = messaging.LogPublisher{}
	if cfg.AMQP.Enabled {
		p = messaging.NewAMQPPublisher(cfg.AMQP)
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

func NewRelay(store outbox.Store, publisher outbox.Publisher, clk clock.Clock, cfg config.Config) *outbox.Relay {
	return outbox.NewRelay(store, publisher, clk, cfg.Outbox)
}

func StartRelay(lc fx.Lifecycle, relay *outbox.Relay, cfg config.Config) error {
	sched, err := outbox.NewScheduler(relay, cfg.Outbox.Interval)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sched.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			return sched.Stop()
		},
	})
	return nil
}
