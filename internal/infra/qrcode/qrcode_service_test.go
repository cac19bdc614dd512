package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			require.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	pngBytes, err := svc.GenerateTrackingQR("-OPedido123")
	require.NoError(t, err)
	require.NotEmpty(t, pngBytes)

	// PNG magic header
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestQRCodeService_ParseTrackingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	validData, err := json.Marshal(QRCodeData{
		PedidoID: "-OPedido123",
		Type:     "rastreio_pedido",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		qrData   string
		expected string
		wantErr  bool
	}{
		{"valid tracking QR", string(validData), "-OPedido123", false},
		{"wrong type", `{"pedido_id":"abc","type":"subscription"}`, "", true},
		{"missing pedido id", `{"type":"rastreio_pedido"}`, "", true},
		{"malformed JSON", `not-json`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.ParseTrackingQR(tt.qrData)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(128, "H")

	data, err := json.Marshal(QRCodeData{PedidoID: "xyz", Type: "rastreio_pedido"})
	require.NoError(t, err)

	id, err := svc.ParseTrackingQR(string(data))
	require.NoError(t, err)
	assert.Equal(t, "xyz", id)
}
