package pgsql

import (
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository against one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:    newPgxProductRepository(dbPool),
		CustomerRepo:   newPgxCustomerRepository(dbPool),
		SimulationRepo: newPgxSimulationRepository(dbPool),
		HistoryRepo:    newPgxHistoryRepository(dbPool),
		TelemetryRepo:  newPgxTelemetryRepository(dbPool),
		TxManager:      NewPgxTransactionManager(dbPool),
	}
}
