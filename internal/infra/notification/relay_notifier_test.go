package notification

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"compras/config"
	"compras/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRelayNotifier_Notify(t *testing.T) {
	var received entity.NotificationPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	notifier := NewRelayNotifier(&config.RelayConfig{
		Endpoint: srv.URL,
		Timeout:  8 * time.Second,
	}, testLogger())

	payload := &entity.NotificationPayload{
		NotificationType:  entity.NotificationPedidoAprovado,
		DestinatarioNome:  "João Silva",
		DestinatarioEmail: "joao@example.com",
		PedidoID:          "abc123",
	}

	err := notifier.Notify(context.Background(), payload)
	require.NoError(t, err)

	assert.Equal(t, entity.NotificationPedidoAprovado, received.NotificationType)
	assert.Equal(t, "joao@example.com", received.DestinatarioEmail)
	assert.Equal(t, "abc123", received.PedidoID)
}

func TestRelayNotifier_Notify_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	notifier := NewRelayNotifier(&config.RelayConfig{
		Endpoint: srv.URL,
		Timeout:  8 * time.Second,
	}, testLogger())

	err := notifier.Notify(context.Background(), &entity.NotificationPayload{
		NotificationType: entity.NotificationPedidoRecebido,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-success status")
}

func TestRelayNotifier_Notify_UnreachableEndpoint(t *testing.T) {
	notifier := NewRelayNotifier(&config.RelayConfig{
		Endpoint: "http://127.0.0.1:1",
		Timeout:  time.Second,
	}, testLogger())

	err := notifier.Notify(context.Background(), &entity.NotificationPayload{
		NotificationType: entity.NotificationPedidoRecebido,
	})

	require.Error(t, err)
}

func TestNoopNotifier(t *testing.T) {
	n := &noopNotifier{logger: testLogger()}

	require.NoError(t, n.Notify(context.Background(), &entity.NotificationPayload{
		NotificationType: entity.NotificationVerificacaoConta,
	}))
	require.NoError(t, n.Close())
}
