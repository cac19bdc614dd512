package handler

import (
	"log/slog"
	"net/http"

	"compras/internal/delivery/http/response"
	"compras/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the identity endpoints.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// SignUp handles the account registration request.
func (h *UserHandler) SignUp(c echo.Context) error {
	var input *usecase.SignUpInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de cadastro inválidos")
	}

	output, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Cadastro realizado. Verifique seu e-mail.")
}

// SignIn handles the credential sign-in request.
func (h *UserHandler) SignIn(c echo.Context) error {
	var input *usecase.SignInInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de acesso inválidos")
	}

	output, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

type emailRequest struct {
	Email string `json:"email"`
}

// RequestVerification re-issues the account verification code.
func (h *UserHandler) RequestVerification(c echo.Context) error {
	var input emailRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "E-mail inválido")
	}

	if err := h.uc.RequestVerification(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Código de verificação enviado")
}

// ConfirmVerification checks the verification code.
func (h *UserHandler) ConfirmVerification(c echo.Context) error {
	var input *usecase.ConfirmVerificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Código inválido")
	}

	if err := h.uc.ConfirmVerification(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Conta verificada")
}

// RequestPasswordReset issues a password reset code.
func (h *UserHandler) RequestPasswordReset(c echo.Context) error {
	var input emailRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "E-mail inválido")
	}

	if err := h.uc.RequestPasswordReset(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Código de redefinição enviado")
}

// ConfirmPasswordReset replaces the credential after code validation.
func (h *UserHandler) ConfirmPasswordReset(c echo.Context) error {
	var input *usecase.ConfirmPasswordResetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de redefinição inválidos")
	}

	if err := h.uc.ConfirmPasswordReset(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Senha redefinida")
}
