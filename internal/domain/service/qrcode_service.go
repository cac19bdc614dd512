package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateTrackingQR generates a tracking QR code (PNG bytes) for a
	// purchase request, embedded in the in-transit notification.
	GenerateTrackingQR(requestID string) ([]byte, error)

	// ParseTrackingQR parses QR code data and returns the request id.
	ParseTrackingQR(qrData string) (string, error)
}
