package handler

import (
	"log/slog"
	"net/http"

	"compras/internal/delivery/http/middleware"
	"compras/internal/delivery/http/response"
	"compras/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get returns the merged identity record and attribute document.
func (h *ProfileHandler) Get(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	output, err := h.uc.GetProfile(c.Request().Context(), actor.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"usuario": output.User,
		"perfil":  output.Profile,
	}, "")
}

// Update merges display name, photo and theme changes.
func (h *ProfileHandler) Update(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do perfil inválidos")
	}

	actor := middleware.ActorFromContext(c)

	output, err := h.uc.UpdateProfile(c.Request().Context(), actor.UID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"usuario": output.User,
		"perfil":  output.Profile,
	}, "Perfil atualizado")
}
