package rtdb

import (
	"context"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"

	"compras/internal/domain/constants"
	"compras/internal/domain/entity"
	"compras/internal/domain/repository"
)

// requestRepository persists PurchaseRequest documents under /compras/{id}.
//
// Patch is a blind merge: the store has no compare-and-set, so concurrent
// writers on the same key follow last-write-wins.
type requestRepository struct {
	requests *db.Ref
}

// NewRequestRepository creates a document-tree backed RequestRepository.
func NewRequestRepository(client *db.Client) repository.RequestRepository {
	return &requestRepository{
		requests: client.NewRef(constants.RequestsPath),
	}
}

// Create pushes a new request document under a server-generated key and
// returns the assigned id.
func (r *requestRepository) Create(ctx context.Context, request *entity.PurchaseRequest) (string, error) {
	ref, err := r.requests.Push(ctx, request)
	if err != nil {
		return "", errors.Wrap(err, "failed to push request document")
	}

	return ref.Key, nil
}

// FindByID retrieves a single request by its document key.
func (r *requestRepository) FindByID(ctx context.Context, id string) (*entity.PurchaseRequest, error) {
	var request entity.PurchaseRequest
	if err := r.requests.Child(id).Get(ctx, &request); err != nil {
		return nil, errors.Wrap(err, "failed to get request document")
	}

	// A missing key reads back as the zero value.
	if request.Status == "" {
		return nil, repository.ErrRequestNotFound
	}
	request.ID = id

	return &request, nil
}

// List retrieves the full collection. Absent data yields an empty slice.
func (r *requestRepository) List(ctx context.Context) ([]*entity.PurchaseRequest, error) {
	var docs map[string]entity.PurchaseRequest
	if err := r.requests.Get(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to list request documents")
	}

	requests := make([]*entity.PurchaseRequest, 0, len(docs))
	for id, doc := range docs {
		request := doc
		request.ID = id
		requests = append(requests, &request)
	}

	return requests, nil
}

// ListByRequester retrieves every request submitted by the given uid.
// The collection is small by domain assumption, so this filters a full read
// rather than maintaining an index.
func (r *requestRepository) ListByRequester(ctx context.Context, uid string) ([]*entity.PurchaseRequest, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]*entity.PurchaseRequest, 0, len(all))
	for _, request := range all {
		if request.SolicitanteUID == uid {
			mine = append(mine, request)
		}
	}

	return mine, nil
}

// Patch merges the given fields into the request document.
func (r *requestRepository) Patch(ctx context.Context, id string, fields map[string]any) error {
	if err := r.requests.Child(id).Update(ctx, fields); err != nil {
		return errors.Wrap(err, "failed to patch request document")
	}

	return nil
}
