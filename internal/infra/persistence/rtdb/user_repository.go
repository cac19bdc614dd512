package rtdb

import (
	"context"

	"firebase.google.com/go/v4/db"
	"github.com/pkg/errors"

	"compras/internal/domain/constants"
	"compras/internal/domain/entity"
	"compras/internal/domain/repository"
)

// userRepository persists User documents under /usuarios/{uid}.
type userRepository struct {
	users *db.Ref
}

// NewUserRepository creates a document-tree backed UserRepository.
func NewUserRepository(client *db.Client) repository.UserRepository {
	return &userRepository{
		users: client.NewRef(constants.UsersPath),
	}
}

// FindByUID retrieves a single user by their document key.
func (r *userRepository) FindByUID(ctx context.Context, uid string) (*entity.User, error) {
	var user entity.User
	if err := r.users.Child(uid).Get(ctx, &user); err != nil {
		return nil, errors.Wrap(err, "failed to get user document")
	}

	// A missing key reads back as the zero value.
	if user.Email == "" {
		return nil, repository.ErrUserNotFound
	}
	user.UID = uid

	return &user, nil
}

// Create persists a new user document keyed by its uid.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if err := r.users.Child(user.UID).Set(ctx, user); err != nil {
		return errors.Wrap(err, "failed to create user document")
	}

	return nil
}

// Update replaces an existing user document.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	if err := r.users.Child(user.UID).Set(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update user document")
	}

	return nil
}

// Patch merges the given fields into the user document.
func (r *userRepository) Patch(ctx context.Context, uid string, fields map[string]any) error {
	if err := r.users.Child(uid).Update(ctx, fields); err != nil {
		return errors.Wrap(err, "failed to patch user document")
	}

	return nil
}

// List retrieves every user document. Absent data yields an empty slice.
func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var docs map[string]entity.User
	if err := r.users.Get(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to list user documents")
	}

	users := make([]*entity.User, 0, len(docs))
	for uid, doc := range docs {
		user := doc
		user.UID = uid
		users = append(users, &user)
	}

	return users, nil
}

// ListWithRoles retrieves every user whose effective role is one of the given roles.
func (r *userRepository) ListWithRoles(ctx context.Context, roles ...entity.Role) ([]*entity.User, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	wanted := entity.Roles(roles)
	matched := make([]*entity.User, 0, len(all))
	for _, user := range all {
		if wanted.Contains(user.EffectiveRole()) {
			matched = append(matched, user)
		}
	}

	return matched, nil
}
