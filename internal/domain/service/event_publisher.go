package service

import (
	"context"

	"compras/internal/domain/entity"
)

// Lifecycle event kinds published after each state-changing engine call.
const (
	EventRequestCreated   = "request.created"
	EventRequestApproved  = "request.approved"
	EventRequestRejected  = "request.rejected"
	EventRequestPurchased = "request.purchased"
)

// LifecycleEvent is the message published to downstream consumers after a
// request transition commits.
type LifecycleEvent struct {
	RequestID string                  `json:"request_id,omitempty"` // For distributed tracing
	EventID   string                  `json:"event_id"`
	Kind      string                  `json:"kind"`
	PedidoID  string                  `json:"pedido_id"`
	Status    entity.Status           `json:"status"`
	ActorUID  string                  `json:"actor_uid,omitempty"`
	Pedido    *entity.PurchaseRequest `json:"pedido,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLifecycleEvent publishes a lifecycle event for async processing
	PublishLifecycleEvent(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
