package handler

import (
	"log/slog"
	"net/http"

	"compras/internal/delivery/http/response"
	"compras/internal/domain/entity"
	"compras/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the administration endpoints.
type AdminHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.UserUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListUsers returns every account, optionally filtered by role.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	if role := c.QueryParam("role"); role != "" {
		users, err := h.uc.ListUsersWithRole(c.Request().Context(), entity.Role(role))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, users, "")
	}

	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "")
}

// GetRole returns the effective role of a user.
func (h *AdminHandler) GetRole(c echo.Context) error {
	role, err := h.uc.GetRole(c.Request().Context(), c.Param("uid"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"role": role.String()}, "")
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// SetRole assigns a role to a user.
func (h *AdminHandler) SetRole(c echo.Context) error {
	var input setRoleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Perfil inválido")
	}

	if err := h.uc.SetRole(c.Request().Context(), c.Param("uid"), entity.Role(input.Role)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Perfil atualizado")
}
