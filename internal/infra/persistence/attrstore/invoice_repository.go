package attrstore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"compras/internal/domain/constants"
	"compras/internal/domain/entity"
	"compras/internal/domain/repository"
)

// invoiceRepository stores invoice documents keyed by purchase request id.
type invoiceRepository struct {
	client *firestore.Client
}

// NewInvoiceRepository creates an attribute-store backed InvoiceRepository.
func NewInvoiceRepository(client *firestore.Client) repository.InvoiceRepository {
	return &invoiceRepository{client: client}
}

// Save writes (or replaces) the invoice document for the request.
func (r *invoiceRepository) Save(ctx context.Context, requestID string, invoice *entity.Invoice) error {
	doc := r.client.Collection(constants.InvoicesCollection).Doc(requestID)
	if _, err := doc.Set(ctx, invoice); err != nil {
		return errors.Wrap(err, "failed to save invoice document")
	}

	return nil
}

// FindByRequestID retrieves the invoice document for the request.
func (r *invoiceRepository) FindByRequestID(ctx context.Context, requestID string) (*entity.Invoice, error) {
	snapshot, err := r.client.Collection(constants.InvoicesCollection).Doc(requestID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to get invoice document")
	}

	var invoice entity.Invoice
	if err := snapshot.DataTo(&invoice); err != nil {
		return nil, errors.Wrap(repository.ErrInvoiceMalformed, err.Error())
	}

	// A document without a page array is unusable for rendering.
	if len(invoice.Pages) == 0 {
		return nil, repository.ErrInvoiceMalformed
	}

	return &invoice, nil
}
