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

// PurchaseHandler holds dependencies for the purchasing-team endpoints.
type PurchaseHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(uc usecase.RequestUsecase, logger *slog.Logger) *PurchaseHandler {
	return &PurchaseHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListApproved returns every request awaiting fulfillment.
func (h *PurchaseHandler) ListApproved(c echo.Context) error {
	requests, err := h.uc.ListByStatus(c.Request().Context(), entity.StatusAprovado)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Confirm records the fulfillment and moves the request to comprado.
func (h *PurchaseHandler) Confirm(c echo.Context) error {
	var input *usecase.FulfillmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados da compra inválidos")
	}

	actor := middleware.ActorFromContext(c)

	request, err := h.uc.ConfirmPurchase(c.Request().Context(), c.Param("id"), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Compra registrada")
}

// AttachInvoice stores the invoice pages for a purchased request.
func (h *PurchaseHandler) AttachInvoice(c echo.Context) error {
	var input *usecase.AttachInvoiceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dados da nota fiscal inválidos")
	}

	if err := h.uc.AttachInvoice(c.Request().Context(), c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Nota fiscal anexada")
}

// GetInvoice returns the invoice pages for a request.
func (h *PurchaseHandler) GetInvoice(c echo.Context) error {
	invoice, err := h.uc.GetInvoice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, invoice, "")
}
