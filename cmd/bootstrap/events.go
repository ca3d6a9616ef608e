package bootstrap

import (
	"context"
	"log/slog"

	"bengkel-service/internal/infra/outbox"
	"bengkel-service/internal/pkg/clock"
	"bengkel-service/internal/pkg/config"
	"bengkel-service/internal/usecase/shared"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPubSub,
		func(ps *gochannel.GoChannel) message.Publisher { return ps },
		func(ps *gochannel.GoChannel) message.Subscriber { return ps },
		outbox.NewNotifier,
		NewRelay,
	),
	fx.Invoke(startOutbox),
)

func NewPubSub(lc fx.Lifecycle, logger *slog.Logger) *gochannel.GoChannel {
	ps := outbox.NewPubSub(outbox.NewLoggerAdapter(logger))
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return ps.Close()
		},
	})
	return ps
}

func NewRelay(store shared.OutboxStore, publisher message.Publisher, clk clock.Clock, cfg config.Config) *outbox.Relay {
	return outbox.NewRelay(store, publisher, clk, cfg.Outbox)
}

func startOutbox(lc fx.Lifecycle, cfg config.Config, relay *outbox.Relay, notifier *outbox.Notifier, logger *slog.Logger) {
	if !cfg.Outbox.Enabled {
		logger.Info("notification outbox disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := notifier.Run(ctx); err != nil {
				cancel()
				return err
			}
			relay.Start()
			logger.Info("notification outbox started", "poll_interval", cfg.Outbox.PollInterval.String())
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			defer cancel()
			return relay.Stop(stopCtx)
		},
	})
}
