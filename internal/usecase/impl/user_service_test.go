package impl

import (
	"context"
	"testing"
	"time"

	"compras/config"
	"compras/internal/domain/entity"
	domainerrors "compras/internal/domain/errors"
	"compras/internal/domain/repository"
	mockRepo "compras/internal/mocks/repository"
	mockSvc "compras/internal/mocks/service"
	"compras/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	notifier     *mockSvc.MockNotifier
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	notifier := mockSvc.NewMockNotifier(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Notifier:     notifier,
		Config: &config.Config{
			Auth: &config.AuthConfig{
				BcryptCost:          4,
				VerificationCodeTTL: 24 * time.Hour,
				ResetCodeTTL:        time.Hour,
			},
		},
		Logger: newDiscardLogger(),
	})

	// Identity mails run detached; never asserted.
	notifier.On("Notify", mock.Anything, mock.Anything).Return(nil).Maybe()

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		notifier:     notifier,
	}
}

func verifiedUser() *entity.User {
	return &entity.User{
		UID:          "joao_example_com",
		Email:        "joao@example.com",
		Nome:         "João Silva",
		Verificado:   true,
		PasswordHash: "$2a$04$hash",
		CreatedAt:    time.Now().UTC().Add(-24 * time.Hour),
	}
}

func TestUserService_SignUp_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.On("FindByUID", ctx, "joao_example_com").
		Return(nil, repository.ErrUserNotFound).Once()
	f.hasher.On("Hash", "Senha123!").Return("$2a$04$hash", nil).Once()
	f.userRepo.On("Create", ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.UID == "joao_example_com" &&
			!user.Verificado &&
			user.VerificationCode != "" &&
			user.VerificationExpiresAt != nil
	})).Return(nil).Once()

	out, err := f.service.SignUp(ctx, &usecase.SignUpInput{
		Nome:     "João Silva",
		Email:    "joao@example.com",
		Password: "Senha123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "joao_example_com", out.User.UID)
	// The response never carries credential material.
	assert.Empty(t, out.User.PasswordHash)
	assert.Empty(t, out.User.VerificationCode)
}

func TestUserService_SignUp_MissingFields(t *testing.T) {
	f := createTestUserService(t)

	_, err := f.service.SignUp(context.Background(), &usecase.SignUpInput{})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{"Nome", "E-mail", "Senha"}, validationErr.Fields())
}

func TestUserService_SignUp_AlreadyExists(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.On("FindByUID", ctx, "joao_example_com").
		Return(verifiedUser(), nil).Once()

	_, err := f.service.SignUp(ctx, &usecase.SignUpInput{
		Nome:     "João Silva",
		Email:    "joao@example.com",
		Password: "Senha123!",
	})

	require.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_SignIn_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := verifiedUser()
	user.Role = entity.RoleAprovador

	f.userRepo.On("FindByUID", ctx, user.UID).Return(user, nil).Once()
	f.hasher.On("Check", "Senha123!", user.PasswordHash).Return(true).Once()
	f.tokenService.On("GenerateTokens", user.UID, entity.RoleAprovador).
		Return("access-token", "refresh-token", nil).Once()

	out, err := f.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "joao@example.com",
		Password: "Senha123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Empty(t, out.User.PasswordHash)
}

func TestUserService_SignIn_BadPassword(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := verifiedUser()

	f.userRepo.On("FindByUID", ctx, user.UID).Return(user, nil).Once()
	f.hasher.On("Check", "errada", user.PasswordHash).Return(false).Once()

	_, err := f.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "joao@example.com",
		Password: "errada",
	})

	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_SignIn_UnknownUser(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.On("FindByUID", ctx, "ghost_example_com").
		Return(nil, repository.ErrUserNotFound).Once()

	_, err := f.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "ghost@example.com",
		Password: "qualquer",
	})

	// Unknown account and bad password are indistinguishable to the caller.
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_SignIn_Unverified(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := verifiedUser()
	user.Verificado = false

	f.userRepo.On("FindByUID", ctx, user.UID).Return(user, nil).Once()
	f.hasher.On("Check", "Senha123!", user.PasswordHash).Return(true).Once()

	_, err := f.service.SignIn(ctx, &usecase.SignInInput{
		Email:    "joao@example.com",
		Password: "Senha123!",
	})

	require.ErrorIs(t, err, domainerrors.ErrAccountNotVerified)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "/auth/verificacao", appErr.Details())
}

func TestUserService_ConfirmVerification_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := verifiedUser()
	user.Verificado = false
	user.VerificationCode = "123456"
	expiresAt := time.Now().UTC().Add(time.Hour)
	user.VerificationExpiresAt = &expiresAt

	f.userRepo.On("FindByUID", ctx, user.UID).Return(user, nil).Once()
	f.userRepo.On("Patch", ctx, user.UID, mock.MatchedBy(func(fields map[string]any) bool {
		return fields["verificado"] == true && fields["verificationCode"] == nil
	})).Return(nil).Once()

	err := f.service.ConfirmVerification(ctx, &usecase.ConfirmVerificationInput{
		Email: "joao@example.com",
		Code:  "123456",
	})

	require.NoError(t, err)
}

func TestUserService_ConfirmVerification_WrongOrExpiredCode(t *testing.T) {
	expired := time.Now().UTC().Add(-time.Minute)
	valid := time.Now().UTC().Add(time.Hour)

	tests := []struct {
		name      string
		code      string
		expiresAt *time.Time
		attempt   string
	}{
		{"wrong code", "123456", &valid, "654321"},
		{"expired code", "123456", &expired, "123456"},
		{"no code issued", "", nil, "123456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestUserService(t)
			ctx := context.Background()
			user := verifiedUser()
			user.Verificado = false
			user.VerificationCode = tt.code
			user.VerificationExpiresAt = tt.expiresAt

			f.userRepo.On("FindByUID", ctx, user.UID).Return(user, nil).Once()

			err := f.service.ConfirmVerification(ctx, &usecase.ConfirmVerificationInput{
				Email: "joao@example.com",
				Code:  tt.attempt,
			})

			require.ErrorIs(t, err, domainerrors.ErrCodeInvalid)
		})
	}
}

func TestUserService_ConfirmPasswordReset_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	user := verifiedUser()
	user.ResetCode = "654321"
	expiresAt := time.Now().UTC().Add(time.Hour)
	user.ResetExpiresAt = &expiresAt

	f.userRepo.On("FindByUID", ctx, user.UID).Return(user, nil).Once()
	f.hasher.On("Hash", "NovaSenha456!").Return("$2a$04$novohash", nil).Once()
	f.userRepo.On("Patch", ctx, user.UID, mock.MatchedBy(func(fields map[string]any) bool {
		return fields["passwordHash"] == "$2a$04$novohash" && fields["resetCode"] == nil
	})).Return(nil).Once()

	err := f.service.ConfirmPasswordReset(ctx, &usecase.ConfirmPasswordResetInput{
		Email:       "joao@example.com",
		Code:        "654321",
		NewPassword: "NovaSenha456!",
	})

	require.NoError(t, err)
}

func TestUserService_GetRole_DefaultsToUser(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.On("FindByUID", ctx, "joao_example_com").
		Return(verifiedUser(), nil).Once()

	role, err := f.service.GetRole(ctx, "joao_example_com")

	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)
}

func TestUserService_SetRole(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.On("FindByUID", ctx, "joao_example_com").
		Return(verifiedUser(), nil).Once()
	f.userRepo.On("Patch", ctx, "joao_example_com", map[string]any{"role": "comprador"}).
		Return(nil).Once()

	require.NoError(t, f.service.SetRole(ctx, "joao_example_com", entity.RoleComprador))
}

func TestUserService_SetRole_Invalid(t *testing.T) {
	f := createTestUserService(t)

	err := f.service.SetRole(context.Background(), "joao_example_com", entity.Role("gerente"))

	require.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestUserService_SetRole_UserClearsKey(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.On("FindByUID", ctx, "joao_example_com").
		Return(verifiedUser(), nil).Once()
	f.userRepo.On("Patch", ctx, "joao_example_com", map[string]any{"role": nil}).
		Return(nil).Once()

	require.NoError(t, f.service.SetRole(ctx, "joao_example_com", entity.RoleUser))
}

func TestUserService_ListUsersWithRole_Sanitized(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	stored := verifiedUser()
	stored.Role = entity.RoleAprovador
	f.userRepo.On("ListWithRoles", ctx, entity.RoleAdmin, entity.RoleAprovador).
		Return([]*entity.User{stored}, nil).Once()

	users, err := f.service.ListUsersWithRole(ctx, entity.RoleAdmin, entity.RoleAprovador)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].PasswordHash)
	assert.Equal(t, entity.RoleAprovador, users[0].Role)
}
