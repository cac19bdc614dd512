// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"compras/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence in the
// document tree (/usuarios/{uid}).
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByUID retrieves a single user by their document key.
	FindByUID(ctx context.Context, uid string) (*entity.User, error)

	// Create persists a new user document (PUT semantics on the key).
	Create(ctx context.Context, user *entity.User) error

	// Update replaces an existing user document.
	Update(ctx context.Context, user *entity.User) error

	// Patch merges the given fields into the user document (PATCH semantics).
	Patch(ctx context.Context, uid string, fields map[string]any) error

	// List retrieves every user document. Absent data yields an empty slice.
	List(ctx context.Context) ([]*entity.User, error)

	// ListWithRoles retrieves every user whose effective role is one of the
	// given roles. Used to find notification recipients.
	ListWithRoles(ctx context.Context, roles ...entity.Role) ([]*entity.User, error)
}
