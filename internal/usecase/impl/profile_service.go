package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "compras/internal/delivery/context"
	"compras/internal/domain/entity"
	domainerrors "compras/internal/domain/errors"
	"compras/internal/domain/repository"
	"compras/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface. The identity
// record and the attribute document live in different stores and are merged
// on read.
type profileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:    params.UserRepo,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile merges the user document with the attribute document.
func (srv *profileService) GetProfile(ctx context.Context, uid string) (*usecase.ProfileOutput, error) {
	user, err := srv.userRepo.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	profile, err := srv.profileRepo.FindByUID(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile document")
	}

	return &usecase.ProfileOutput{
		User:    user.Sanitized(),
		Profile: profile,
	}, nil
}

// UpdateProfile patches the display name on the identity record and merges
// photo/theme into the attribute document. Empty fields are left untouched.
func (srv *profileService) UpdateProfile(ctx context.Context, uid string, input *usecase.UpdateProfileInput) (*usecase.ProfileOutput, error) {
	if _, err := srv.userRepo.FindByUID(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Nome != "" {
		if err := srv.userRepo.Patch(ctx, uid, map[string]any{"nome": input.Nome}); err != nil {
			return nil, errors.Wrap(err, "failed to patch display name")
		}
	}

	if input.Photo != "" || input.Theme != "" {
		profile := &entity.Profile{
			Photo:     input.Photo,
			Theme:     input.Theme,
			UpdatedAt: time.Now().UTC(),
		}
		if err := srv.profileRepo.Save(ctx, uid, profile); err != nil {
			return nil, errors.Wrap(err, "failed to save profile document")
		}
	}

	srv.log(ctx).Info("Profile updated", slog.String("uid", uid))

	return srv.GetProfile(ctx, uid)
}
