package bootstrap

import (
	"context"
	"log/slog"

	"fleet-rental/internal/infra/messaging"
	"fleet-rental/internal/pkg/config"
	"fleet-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher wires the Kafka producer when brokers are configured
// and a no-op publisher otherwise, so local development needs no broker.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (commands.EventPublisher, error) {
	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Brokers[0] == "" {
		slog.Info("kafka brokers not configured, booking events disabled")
		return messaging.NewNoopPublisher(), nil
	}

	publisher, err := messaging.NewKafkaPublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	slog.Info("kafka publisher initialized", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return publisher, nil
}
