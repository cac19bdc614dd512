package handler

import (
	"log/slog"
	"net/http"

	"compras/internal/delivery/http/middleware"
	"compras/internal/delivery/http/response"
	"compras/internal/domain/entity"
	"compras/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ApprovalHandler holds dependencies for the reviewer endpoints.
type ApprovalHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewApprovalHandler is the constructor for ApprovalHandler, injected by Fx.
func NewApprovalHandler(uc usecase.RequestUsecase, logger *slog.Logger) *ApprovalHandler {
	return &ApprovalHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPending returns every request awaiting review. The counters are
// projected from the full collection, not the pendente slice, so the
// pending-purchase counter stays visible from the approval queue.
func (h *ApprovalHandler) ListPending(c echo.Context) error {
	requests, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	pending := make([]*entity.PurchaseRequest, 0, len(requests))
	for _, request := range requests {
		if request.Status == entity.StatusPendente {
			pending = append(pending, request)
		}
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"pedidos": pending,
		"counts":  usecase.DeriveCounts(requests),
	}, "")
}

// Approve moves a pending request to aprovado.
func (h *ApprovalHandler) Approve(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	request, err := h.uc.Approve(c.Request().Context(), c.Param("id"), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Pedido aprovado")
}

type rejectRequest struct {
	Justificativa string `json:"justificativa"`
}

// Reject moves a pending request to reprovado with an optional justificativa.
func (h *ApprovalHandler) Reject(c echo.Context) error {
	var input rejectRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de reprovação inválidos")
	}

	actor := middleware.ActorFromContext(c)

	request, err := h.uc.Reject(c.Request().Context(), c.Param("id"), actor, input.Justificativa)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Pedido reprovado")
}
