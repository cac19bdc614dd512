package impl

import (
	"context"
	"log/slog"

	deliverycontext "compras/internal/delivery/context"
	"compras/internal/domain/repository"
	"compras/internal/usecase"
	"compras/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	requestRepo repository.RequestRepository
	logger      *slog.Logger
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	Logger      *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		requestRepo: params.RequestRepo,
		logger:      params.Logger,
	}
}

func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Summary aggregates the full collection. Monetary strings are normalized
// from their pt-BR form; a value that does not parse contributes zero.
func (srv *dashboardService) Summary(ctx context.Context) (*usecase.DashboardSummary, error) {
	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests for dashboard")
	}

	summary := &usecase.DashboardSummary{
		Counts:          usecase.DeriveCounts(requests),
		TotalPorStatus:  make(map[string]int),
		GastoPorUnidade: make(map[string]float64),
		GastoPorTipo:    make(map[string]float64),
	}

	for _, r := range requests {
		summary.TotalPorStatus[string(r.Status)]++

		value, ok := util.ParseCurrency(r.Valor)
		if !ok {
			continue
		}

		summary.TotalGasto += value
		if r.Unidade != "" {
			summary.GastoPorUnidade[r.Unidade] += value
		}
		if r.Tipo != "" {
			summary.GastoPorTipo[string(r.Tipo)] += value
		}
	}

	if summary.TotalGasto > 0 {
		summary.TotalGastoDisplay = util.FormatCurrency(summary.TotalGasto)
	} else {
		summary.TotalGastoDisplay = "não informado"
	}

	srv.log(ctx).Debug("Dashboard summary built",
		slog.Int("requests", len(requests)),
		slog.Float64("total_gasto", summary.TotalGasto),
	)

	return summary, nil
}
