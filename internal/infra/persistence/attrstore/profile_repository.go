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

// profileRepository stores per-user attribute documents (photo, theme).
type profileRepository struct {
	client *firestore.Client
}

// NewProfileRepository creates an attribute-store backed ProfileRepository.
func NewProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

// Save merges the profile document for the user. MergeAll requires map
// data, so only the populated attributes are written.
func (r *profileRepository) Save(ctx context.Context, uid string, profile *entity.Profile) error {
	fields := map[string]any{
		"updatedAt": profile.UpdatedAt,
	}
	if profile.Photo != "" {
		fields["photo"] = profile.Photo
	}
	if profile.Theme != "" {
		fields["theme"] = profile.Theme
	}

	doc := r.client.Collection(constants.ProfilesCollection).Doc(uid)
	if _, err := doc.Set(ctx, fields, firestore.MergeAll); err != nil {
		return errors.Wrap(err, "failed to save profile document")
	}

	return nil
}

// FindByUID retrieves the profile document; missing documents yield an
// empty profile.
func (r *profileRepository) FindByUID(ctx context.Context, uid string) (*entity.Profile, error) {
	snapshot, err := r.client.Collection(constants.ProfilesCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &entity.Profile{}, nil
		}

		return nil, errors.Wrap(err, "failed to get profile document")
	}

	var profile entity.Profile
	if err := snapshot.DataTo(&profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile document")
	}

	return &profile, nil
}
