package repository

import (
	"context"
	"errors"

	"compras/internal/domain/entity"
)

// ErrRequestNotFound is returned when a purchase request document is missing.
var ErrRequestNotFound = errors.New("purchase request not found")

// RequestRepository defines the persistence operations for purchase requests
// in the document tree (/compras/{id}).
//
// The store offers no mutual exclusion: Patch is a blind merge and concurrent
// writers follow last-write-wins semantics. The lifecycle engine accepts this.
type RequestRepository interface {
	// Create persists a new request under a server-generated key (POST
	// semantics) and returns the assigned id.
	Create(ctx context.Context, request *entity.PurchaseRequest) (string, error)

	// FindByID retrieves a single request by its document key.
	FindByID(ctx context.Context, id string) (*entity.PurchaseRequest, error)

	// List retrieves the full collection. Absent data yields an empty slice.
	List(ctx context.Context) ([]*entity.PurchaseRequest, error)

	// ListByRequester retrieves every request submitted by the given uid.
	ListByRequester(ctx context.Context, uid string) ([]*entity.PurchaseRequest, error)

	// Patch merges the given fields into the request document.
	Patch(ctx context.Context, id string, fields map[string]any) error
}
