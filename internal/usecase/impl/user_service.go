package impl

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"compras/config"
	deliverycontext "compras/internal/delivery/context"
	"compras/internal/domain/entity"
	domainerrors "compras/internal/domain/errors"
	"compras/internal/domain/repository"
	"compras/internal/domain/service"
	"compras/internal/usecase"
	"compras/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultVerificationCodeTTL = 24 * time.Hour
	defaultResetCodeTTL        = time.Hour
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo            repository.UserRepository
	hasher              service.PasswordHasher
	tokenService        service.TokenService
	notifier            service.Notifier
	verificationCodeTTL time.Duration
	resetCodeTTL        time.Duration
	logger              *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     service.Notifier
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	verificationTTL := defaultVerificationCodeTTL
	resetTTL := defaultResetCodeTTL
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.VerificationCodeTTL > 0 {
			verificationTTL = params.Config.Auth.VerificationCodeTTL
		}
		if params.Config.Auth.ResetCodeTTL > 0 {
			resetTTL = params.Config.Auth.ResetCodeTTL
		}
	}

	return &userService{
		userRepo:            params.UserRepo,
		hasher:              params.Hasher,
		tokenService:        params.TokenService,
		notifier:            params.Notifier,
		verificationCodeTTL: verificationTTL,
		resetCodeTTL:        resetTTL,
		logger:              params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new unverified account and mails the verification code.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	var missing []string
	if input.Nome == "" {
		missing = append(missing, "Nome")
	}
	if input.Email == "" {
		missing = append(missing, "E-mail")
	}
	if input.Password == "" {
		missing = append(missing, "Senha")
	}
	if len(missing) > 0 {
		return nil, domainerrors.NewValidationError(missing...)
	}

	uid := util.SanitizeEmailKey(input.Email)

	_, err := srv.userRepo.FindByUID(ctx, uid)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	code, err := generateCode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}
	expiresAt := time.Now().UTC().Add(srv.verificationCodeTTL)

	user := &entity.User{
		UID:                   uid,
		Email:                 input.Email,
		Nome:                  input.Nome,
		Verificado:            false,
		PasswordHash:          hash,
		VerificationCode:      code,
		VerificationExpiresAt: &expiresAt,
		CreatedAt:             time.Now().UTC(),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.String("uid", uid))

	srv.dispatchCodeMail(ctx, user, entity.NotificationVerificacaoConta, code)

	return &usecase.SignUpOutput{User: user.Sanitized()}, nil
}

// SignIn validates the credential and issues the token pair. Unverified
// accounts are refused with a redirect hint toward the verification screen.
func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	uid := util.SanitizeEmailKey(input.Email)

	user, err := srv.userRepo.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.Verificado {
		return nil, domainerrors.ErrAccountNotVerified
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(uid, user.EffectiveRole())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Info("User signed in", slog.String("uid", uid))

	return &usecase.SignInOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.Sanitized(),
	}, nil
}

// RequestVerification re-issues the verification code for an unverified
// account.
func (srv *userService) RequestVerification(ctx context.Context, email string) error {
	uid := util.SanitizeEmailKey(email)

	user, err := srv.findUser(ctx, uid)
	if err != nil {
		return err
	}
	if user.Verificado {
		return domainerrors.ErrConflict.WrapMessage("conta já verificada")
	}

	code, err := generateCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}
	expiresAt := time.Now().UTC().Add(srv.verificationCodeTTL)

	fields := map[string]any{
		"verificationCode":      code,
		"verificationExpiresAt": expiresAt.Format(time.RFC3339),
	}
	if err := srv.userRepo.Patch(ctx, uid, fields); err != nil {
		return errors.Wrap(err, "failed to store verification code")
	}

	srv.dispatchCodeMail(ctx, user, entity.NotificationVerificacaoConta, code)

	return nil
}

// ConfirmVerification checks the one-time code and marks the account verified.
func (srv *userService) ConfirmVerification(ctx context.Context, input *usecase.ConfirmVerificationInput) error {
	uid := util.SanitizeEmailKey(input.Email)

	user, err := srv.findUser(ctx, uid)
	if err != nil {
		return err
	}

	if user.VerificationCode == "" || user.VerificationCode != input.Code {
		return domainerrors.ErrCodeInvalid
	}
	if user.VerificationExpiresAt == nil || time.Now().UTC().After(*user.VerificationExpiresAt) {
		return domainerrors.ErrCodeInvalid
	}

	fields := map[string]any{
		"verificado":            true,
		"verificationCode":      nil,
		"verificationExpiresAt": nil,
	}
	if err := srv.userRepo.Patch(ctx, uid, fields); err != nil {
		return errors.Wrap(err, "failed to mark user verified")
	}

	srv.log(ctx).Info("Account verified", slog.String("uid", uid))

	return nil
}

// RequestPasswordReset issues a reset code and mails it.
func (srv *userService) RequestPasswordReset(ctx context.Context, email string) error {
	uid := util.SanitizeEmailKey(email)

	user, err := srv.findUser(ctx, uid)
	if err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}
	expiresAt := time.Now().UTC().Add(srv.resetCodeTTL)

	fields := map[string]any{
		"resetCode":      code,
		"resetExpiresAt": expiresAt.Format(time.RFC3339),
	}
	if err := srv.userRepo.Patch(ctx, uid, fields); err != nil {
		return errors.Wrap(err, "failed to store reset code")
	}

	srv.dispatchCodeMail(ctx, user, entity.NotificationRedefinicaoSenha, code)

	return nil
}

// ConfirmPasswordReset checks the reset code and replaces the credential.
func (srv *userService) ConfirmPasswordReset(ctx context.Context, input *usecase.ConfirmPasswordResetInput) error {
	uid := util.SanitizeEmailKey(input.Email)

	user, err := srv.findUser(ctx, uid)
	if err != nil {
		return err
	}

	if user.ResetCode == "" || user.ResetCode != input.Code {
		return domainerrors.ErrCodeInvalid
	}
	if user.ResetExpiresAt == nil || time.Now().UTC().After(*user.ResetExpiresAt) {
		return domainerrors.ErrCodeInvalid
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed
	}

	fields := map[string]any{
		"passwordHash":   hash,
		"resetCode":      nil,
		"resetExpiresAt": nil,
	}
	if err := srv.userRepo.Patch(ctx, uid, fields); err != nil {
		return errors.Wrap(err, "failed to replace credential")
	}

	srv.log(ctx).Info("Password reset", slog.String("uid", uid))

	return nil
}

// GetRole resolves the effective role of a user; absent role means "user".
func (srv *userService) GetRole(ctx context.Context, uid string) (entity.Role, error) {
	user, err := srv.findUser(ctx, uid)
	if err != nil {
		return "", err
	}

	return user.EffectiveRole(), nil
}

// SetRole assigns a role to a user. The admin gate lives at the route.
func (srv *userService) SetRole(ctx context.Context, uid string, role entity.Role) error {
	if !role.IsValid() {
		return domainerrors.ErrInvalidRole
	}

	if _, err := srv.findUser(ctx, uid); err != nil {
		return err
	}

	fields := map[string]any{"role": string(role)}
	if role == entity.RoleUser {
		// The default profile is stored as an absent key.
		fields["role"] = nil
	}
	if err := srv.userRepo.Patch(ctx, uid, fields); err != nil {
		return errors.Wrap(err, "failed to set role")
	}

	srv.log(ctx).Info("Role assigned",
		slog.String("uid", uid),
		slog.String("role", role.String()),
	)

	return nil
}

// ListUsers returns every account, credential material stripped.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return sanitizeUsers(users), nil
}

// ListUsersWithRole returns every account holding one of the given roles.
func (srv *userService) ListUsersWithRole(ctx context.Context, roles ...entity.Role) ([]*entity.User, error) {
	users, err := srv.userRepo.ListWithRoles(ctx, roles...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users with roles")
	}

	return sanitizeUsers(users), nil
}

func (srv *userService) findUser(ctx context.Context, uid string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUID(ctx, uid)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// dispatchCodeMail sends an identity mail with a one-time code through the
// relay, detached from the caller like the lifecycle mails.
func (srv *userService) dispatchCodeMail(ctx context.Context, user *entity.User, kind entity.NotificationType, code string) {
	logger := srv.log(ctx)

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		payload := &entity.NotificationPayload{
			NotificationType:  kind,
			DestinatarioNome:  user.Nome,
			DestinatarioEmail: user.Email,
			Codigo:            code,
		}
		if err := srv.notifier.Notify(notifyCtx, payload); err != nil {
			logger.Warn("Notification dispatch failed",
				slog.String("type", string(kind)),
				slog.Any("error", err),
			)
		}
	}()
}

func sanitizeUsers(users []*entity.User) []*entity.User {
	out := make([]*entity.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}

	return out
}

// generateCode produces the 6-digit one-time code mailed to the user.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", errors.WithStack(err)
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
