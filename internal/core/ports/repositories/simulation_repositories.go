package repositories

import (
	"context"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// SimulationRepository stores accepted simulation runs.
type SimulationRepository interface {
	// SaveSimulation persists a simulation and fills in its generated id.
	SaveSimulation(ctx context.Context, simulation *domain.Simulation) error

	// ListSimulations returns all simulations, newest first, with product
	// names resolved.
	ListSimulations(ctx context.Context) ([]domain.Simulation, error)

	// CountSimulationsByCustomer returns how many simulations a customer has.
	CountSimulationsByCustomer(ctx context.Context, customerID int64) (int64, error)

	// AggregateByProductDay groups simulations by product name and calendar
	// day, returning count and mean final value per group.
	AggregateByProductDay(ctx context.Context) ([]domain.ProductDayAggregate, error)
}
