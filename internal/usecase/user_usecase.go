package usecase

import (
	"context"

	"compras/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Nome     string
	Email    string
	Password string
}

// SignInInput defines the data required to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// ConfirmVerificationInput carries the one-time code mailed at sign-up.
type ConfirmVerificationInput struct {
	Email string
	Code  string
}

// ConfirmPasswordResetInput carries the reset code plus the new credential.
type ConfirmPasswordResetInput struct {
	Email       string
	Code        string
	NewPassword string
}

// --- Output DTOs ---

// SignUpOutput returns the newly created account's basic information.
type SignUpOutput struct {
	User *entity.User
}

// SignInOutput returns the generated tokens after a successful sign-in.
type SignInOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// UserUsecase defines the identity and access operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*SignUpOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)

	// RequestVerification re-issues the account verification code.
	RequestVerification(ctx context.Context, email string) error
	ConfirmVerification(ctx context.Context, input *ConfirmVerificationInput) error

	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, input *ConfirmPasswordResetInput) error

	GetRole(ctx context.Context, uid string) (entity.Role, error)
	SetRole(ctx context.Context, uid string, role entity.Role) error

	ListUsers(ctx context.Context) ([]*entity.User, error)
	ListUsersWithRole(ctx context.Context, roles ...entity.Role) ([]*entity.User, error)
}
