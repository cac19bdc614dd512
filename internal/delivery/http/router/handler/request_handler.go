package handler

import (
	"log/slog"
	"net/http"

	"compras/internal/delivery/http/middleware"
	"compras/internal/delivery/http/response"
	"compras/internal/domain/entity"
	domainerrors "compras/internal/domain/errors"
	"compras/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for the requester-facing endpoints.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles a new purchase request draft.
func (h *RequestHandler) Submit(c echo.Context) error {
	var input *usecase.SubmitRequestInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados do pedido inválidos")
	}

	actor := middleware.ActorFromContext(c)

	output, err := h.uc.Submit(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"id":     output.ID,
		"pedido": output.Request,
	}, "Pedido registrado")
}

// ListMine returns the caller's own requests.
func (h *RequestHandler) ListMine(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	requests, err := h.uc.ListByRequester(c.Request().Context(), actor.UID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Get returns a single request. Regular users may only read their own;
// reviewer and purchasing roles see everything.
func (h *RequestHandler) Get(c echo.Context) error {
	actor := middleware.ActorFromContext(c)

	request, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	if actor.Role == entity.RoleUser && request.SolicitanteUID != actor.UID {
		return domainerrors.ErrForbidden
	}

	return response.Success(c, http.StatusOK, request, "")
}

type trackRequest struct {
	QRData string `json:"qrData"`
}

// Track resolves a scanned tracking code to the request it points at.
func (h *RequestHandler) Track(c echo.Context) error {
	var input trackRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados de rastreio inválidos")
	}

	request, err := h.uc.Track(c.Request().Context(), input.QRData)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "")
}
