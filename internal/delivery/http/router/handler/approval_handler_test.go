package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"compras/internal/domain/entity"
	mocks "compras/internal/mocks/usecase"
	"compras/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func requestWithStatus(status entity.Status) *entity.PurchaseRequest {
	return &entity.PurchaseRequest{
		SolicitanteNome:  "Maria Souza",
		SolicitanteEmail: "maria@example.com",
		SolicitanteUID:   "maria_example_com",
		Unidade:          "TI",
		Tipo:             entity.CategoriaProduto,
		Status:           status,
	}
}

func TestApprovalHandler_ListPending_CountsCoverFullCollection(t *testing.T) {
	uc := mocks.NewMockRequestUsecase(t)
	collection := []*entity.PurchaseRequest{
		requestWithStatus(entity.StatusPendente),
		requestWithStatus(entity.StatusPendente),
		requestWithStatus(entity.StatusAprovado),
		requestWithStatus(entity.StatusAprovado),
		requestWithStatus(entity.StatusAprovado),
		requestWithStatus(entity.StatusComprado),
	}
	uc.On("List", mock.Anything).Return(collection, nil).Once()

	h := NewApprovalHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestContext(t, http.MethodGet, "/aprovacao/pendentes")

	require.NoError(t, h.ListPending(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Pedidos []*entity.PurchaseRequest `json:"pedidos"`
			Counts  usecase.RequestCounts     `json:"counts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// The queue itself only carries pendente requests.
	require.Len(t, body.Data.Pedidos, 2)
	for _, pedido := range body.Data.Pedidos {
		assert.Equal(t, entity.StatusPendente, pedido.Status)
	}

	// The counters are projected from the whole collection, so the aprovado
	// backlog stays visible from the approval screen.
	assert.Equal(t, 2, body.Data.Counts.PendingApprovals)
	assert.Equal(t, 3, body.Data.Counts.PendingPurchases)
}

func TestApprovalHandler_ListPending_EmptyCollection(t *testing.T) {
	uc := mocks.NewMockRequestUsecase(t)
	uc.On("List", mock.Anything).Return([]*entity.PurchaseRequest{}, nil).Once()

	h := NewApprovalHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, rec := newTestContext(t, http.MethodGet, "/aprovacao/pendentes")

	require.NoError(t, h.ListPending(c))

	var body struct {
		Data struct {
			Pedidos []*entity.PurchaseRequest `json:"pedidos"`
			Counts  usecase.RequestCounts     `json:"counts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Empty(t, body.Data.Pedidos)
	assert.Equal(t, 0, body.Data.Counts.PendingApprovals)
	assert.Equal(t, 0, body.Data.Counts.PendingPurchases)
}

func TestApprovalHandler_ListPending_StoreError(t *testing.T) {
	uc := mocks.NewMockRequestUsecase(t)
	uc.On("List", mock.Anything).Return(nil, errors.New("store unavailable")).Once()

	h := NewApprovalHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c, _ := newTestContext(t, http.MethodGet, "/aprovacao/pendentes")

	err := h.ListPending(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store unavailable")
}
