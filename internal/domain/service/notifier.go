// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"compras/internal/domain/entity"
)

// Notifier dispatches structured payloads to the external email relay.
//
// Delivery is best-effort: the returned error exists so the contract stays
// visible at the type level, but lifecycle call sites ignore it by design —
// email delivery is not part of the transactional guarantee of a status
// change. Implementations must bound their own round trip (the relay carries
// an 8-second deadline) and never inspect the response body.
type Notifier interface {
	Notify(ctx context.Context, payload *entity.NotificationPayload) error

	// Close releases any resources held by the notifier.
	Close() error
}
