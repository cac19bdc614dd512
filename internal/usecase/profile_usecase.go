package usecase

import (
	"context"

	"compras/internal/domain/entity"
)

// UpdateProfileInput carries the optional profile attributes. Empty fields
// are left untouched by the merge.
type UpdateProfileInput struct {
	Nome  string
	Photo string
	Theme string
}

// ProfileOutput merges the identity record with the attribute document.
type ProfileOutput struct {
	User    *entity.User
	Profile *entity.Profile
}

// ProfileUsecase defines the per-user profile operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, uid string) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, uid string, input *UpdateProfileInput) (*ProfileOutput, error)
}
