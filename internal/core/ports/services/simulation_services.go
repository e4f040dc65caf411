package services

import (
	"context"

	"github.com/cefinvest/invest_backend/internal/dto"
)

// SimulationSvc runs investment simulations and reports on past runs.
type SimulationSvc interface {
	// Simulate validates the request, resolves or auto-selects a product,
	// computes the compound-interest projection and persists the run.
	// Failures surface as apperrors sentinels: ErrValidation, ErrNotFound,
	// ErrUnprocessable or ErrInternal.
	Simulate(ctx context.Context, req dto.SimulationRequest) (*dto.SimulationResponse, error)

	// ListSimulations returns every persisted simulation.
	ListSimulations(ctx context.Context) ([]dto.SimulationHistoryResponse, error)

	// SimulationsByProductDay returns the per-product per-day rollup.
	SimulationsByProductDay(ctx context.Context) ([]dto.SimulationByProductDayResponse, error)
}
