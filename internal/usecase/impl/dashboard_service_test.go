package impl

import (
	"context"
	"testing"

	"compras/internal/domain/entity"
	mockRepo "compras/internal/mocks/repository"
	"compras/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDashboardService(t *testing.T) (usecase.DashboardUsecase, *mockRepo.MockRequestRepository) {
	requestRepo := mockRepo.NewMockRequestRepository(t)

	service := NewDashboardService(DashboardServiceParams{
		RequestRepo: requestRepo,
		Logger:      newDiscardLogger(),
	})

	return service, requestRepo
}

func requestWith(status entity.Status, tipo entity.Categoria, unidade, valor string) *entity.PurchaseRequest {
	return &entity.PurchaseRequest{
		Status:  status,
		Tipo:    tipo,
		Unidade: unidade,
		Valor:   valor,
	}
}

func TestDashboardService_Summary(t *testing.T) {
	service, requestRepo := createTestDashboardService(t)
	ctx := context.Background()

	requests := []*entity.PurchaseRequest{
		requestWith(entity.StatusPendente, entity.CategoriaProduto, "TI", ""),
		requestWith(entity.StatusPendente, entity.CategoriaServico, "Marketing", ""),
		requestWith(entity.StatusPendente, entity.CategoriaProduto, "TI", ""),
		requestWith(entity.StatusAprovado, entity.CategoriaProduto, "Financeiro", ""),
		requestWith(entity.StatusAprovado, entity.CategoriaServico, "Comercial", ""),
		requestWith(entity.StatusReprovado, entity.CategoriaProduto, "TI", ""),
		requestWith(entity.StatusComprado, entity.CategoriaProduto, "TI", "R$ 1.234,56"),
		requestWith(entity.StatusComprado, entity.CategoriaProduto, "TI", "R$ 765,44"),
		requestWith(entity.StatusComprado, entity.CategoriaServico, "Marketing", "R$ 500,00"),
		requestWith(entity.StatusComprado, entity.CategoriaServico, "Operações", "valor a combinar"),
	}
	requestRepo.On("List", ctx).Return(requests, nil).Once()

	summary, err := service.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Counts.PendingApprovals)
	assert.Equal(t, 2, summary.Counts.PendingPurchases)

	assert.Equal(t, 3, summary.TotalPorStatus["pendente"])
	assert.Equal(t, 2, summary.TotalPorStatus["aprovado"])
	assert.Equal(t, 1, summary.TotalPorStatus["reprovado"])
	assert.Equal(t, 4, summary.TotalPorStatus["comprado"])

	// The unparseable "valor a combinar" contributes zero.
	assert.InDelta(t, 2500.0, summary.TotalGasto, 0.001)
	assert.Equal(t, "R$ 2.500,00", summary.TotalGastoDisplay)

	assert.InDelta(t, 2000.0, summary.GastoPorUnidade["TI"], 0.001)
	assert.InDelta(t, 500.0, summary.GastoPorUnidade["Marketing"], 0.001)
	assert.InDelta(t, 2000.0, summary.GastoPorTipo["produto"], 0.001)
	assert.InDelta(t, 500.0, summary.GastoPorTipo["servico"], 0.001)
}

func TestDashboardService_Summary_EmptyCollection(t *testing.T) {
	service, requestRepo := createTestDashboardService(t)
	ctx := context.Background()

	requestRepo.On("List", ctx).Return([]*entity.PurchaseRequest{}, nil).Once()

	summary, err := service.Summary(ctx)
	require.NoError(t, err)

	assert.Zero(t, summary.Counts.PendingApprovals)
	assert.Zero(t, summary.TotalGasto)
	assert.Equal(t, "não informado", summary.TotalGastoDisplay)
}

func TestDashboardService_Summary_StoreError(t *testing.T) {
	service, requestRepo := createTestDashboardService(t)
	ctx := context.Background()

	requestRepo.On("List", ctx).Return(nil, errors.New("store unavailable")).Once()

	_, err := service.Summary(ctx)

	require.Error(t, err)
}
