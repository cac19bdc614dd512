package usecase

import (
	"context"
)

// DashboardSummary aggregates the whole request collection for the dashboard
// screen. Monetary totals are numeric; TotalGastoDisplay carries the pt-BR
// rendering ("R$ 1.234,56", or "não informado" when nothing parsed).
type DashboardSummary struct {
	Counts RequestCounts `json:"counts"`

	TotalPorStatus map[string]int `json:"totalPorStatus"`

	TotalGasto        float64 `json:"totalGasto"`
	TotalGastoDisplay string  `json:"totalGastoDisplay"`

	GastoPorUnidade map[string]float64 `json:"gastoPorUnidade"`
	GastoPorTipo    map[string]float64 `json:"gastoPorTipo"`
}

// DashboardUsecase builds spend and status projections over the collection.
type DashboardUsecase interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
