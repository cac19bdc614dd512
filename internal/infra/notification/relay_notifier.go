package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"compras/config"
	"compras/internal/domain/entity"
	"compras/internal/domain/service"

	"github.com/pkg/errors"
)

// relayNotifier implements Notifier by posting opaque JSON payloads to the
// external email relay. The relay renders templates and sends mail; this
// side only cares about the status code.
type relayNotifier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRelayNotifier creates a Notifier bound to the configured relay endpoint.
// The HTTP client timeout doubles as the delivery deadline, so a slow relay
// never holds a request transition hostage.
func NewRelayNotifier(cfg *config.RelayConfig, logger *slog.Logger) service.Notifier {
	return &relayNotifier{
		endpoint: cfg.Endpoint,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Notify serializes the payload and posts it to the relay.
func (n *relayNotifier) Notify(ctx context.Context, payload *entity.NotificationPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	n.logger.Info("[Relay] Dispatching notification",
		slog.String("type", string(payload.NotificationType)),
		slog.String("destinatario", payload.DestinatarioEmail),
	)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused. The body itself is never
	// interpreted.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("relay returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Close releases resources (no-op for HTTP client)
func (n *relayNotifier) Close() error {
	return nil
}
