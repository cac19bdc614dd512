package notification

import (
	"context"
	"log/slog"

	"compras/config"
	"compras/internal/domain/entity"
	"compras/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopNotifier is used when no relay endpoint is configured, such as local
// development without the mail relay running.
type noopNotifier struct {
	logger *slog.Logger
}

func (n *noopNotifier) Notify(ctx context.Context, payload *entity.NotificationPayload) error {
	n.logger.Debug("[NoopRelay] Relay not configured, skipping notification",
		slog.String("type", string(payload.NotificationType)),
	)

	return nil
}

func (n *noopNotifier) Close() error {
	return nil
}

// NotifierParams holds dependencies for Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Relay
	logger := params.Logger

	if cfg == nil || cfg.Endpoint == "" {
		logger.Info("Relay not configured, using no-op notifier")

		return &noopNotifier{logger: logger}, nil
	}

	if cfg.Timeout <= 0 {
		return nil, errors.New("relay timeout must be positive")
	}

	logger.Info("Using HTTP relay notifier",
		slog.String("endpoint", cfg.Endpoint),
		slog.Duration("timeout", cfg.Timeout),
	)

	notifier := NewRelayNotifier(cfg, logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Notifier")

			return notifier.Close()
		},
	})

	return notifier, nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
