package repository

import (
	"context"
	"errors"

	"compras/internal/domain/entity"
)

// ErrInvoiceNotFound is returned when no invoice document exists for a request.
var ErrInvoiceNotFound = errors.New("invoice not found")

// ErrInvoiceMalformed is returned when the stored document lacks a page array.
var ErrInvoiceMalformed = errors.New("invoice document malformed")

// InvoiceRepository defines the attribute-store operations for invoice
// documents, keyed by purchase request id.
type InvoiceRepository interface {
	// Save writes (or replaces) the invoice document for the request.
	Save(ctx context.Context, requestID string, invoice *entity.Invoice) error

	// FindByRequestID retrieves the invoice document for the request.
	FindByRequestID(ctx context.Context, requestID string) (*entity.Invoice, error)
}

// ProfileRepository defines the attribute-store operations for per-user
// profile documents (photo, theme preference).
type ProfileRepository interface {
	// Save merges the profile document for the user.
	Save(ctx context.Context, uid string, profile *entity.Profile) error

	// FindByUID retrieves the profile document; a missing document yields an
	// empty profile, not an error.
	FindByUID(ctx context.Context, uid string) (*entity.Profile, error)
}
