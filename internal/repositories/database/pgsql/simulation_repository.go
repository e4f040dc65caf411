package pgsql

import (
	"context"
	"fmt"

	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	"github.com/cefinvest/invest_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSimulationRepository struct {
	db *pgxpool.Pool
}

func newPgxSimulationRepository(db *pgxpool.Pool) portsrepo.SimulationRepository {
	return &PgxSimulationRepository{db: db}
}

var _ portsrepo.SimulationRepository = (*PgxSimulationRepository)(nil)

func (r *PgxSimulationRepository) SaveSimulation(ctx context.Context, simulation *domain.Simulation) error {
	query := `
		INSERT INTO simulations (customer_id, product_id, amount_invested, final_value, term_months, simulated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	err := queryRunner(ctx, r.db).QueryRow(ctx, query,
		simulation.CustomerID,
		simulation.ProductID,
		simulation.AmountInvested,
		simulation.FinalValue,
		simulation.TermMonths,
		simulation.SimulatedAt,
	).Scan(&simulation.ID)
	if err != nil {
		return fmt.Errorf("failed to save simulation: %w", err)
	}
	return nil
}

func (r *PgxSimulationRepository) ListSimulations(ctx context.Context) ([]domain.Simulation, error) {
	query := `
		SELECT s.id, s.customer_id, s.product_id, p.name, s.amount_invested, s.final_value, s.term_months, s.simulated_at
		FROM simulations s
		JOIN products p ON p.id = s.product_id
		ORDER BY s.simulated_at DESC, s.id DESC;
	`
	rows, err := queryRunner(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	defer rows.Close()

	simulations := make([]domain.Simulation, 0)
	for rows.Next() {
		var m models.Simulation
		var productName string
		if err := rows.Scan(&m.ID, &m.CustomerID, &m.ProductID, &productName, &m.AmountInvested, &m.FinalValue, &m.TermMonths, &m.SimulatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan simulation row: %w", err)
		}
		simulations = append(simulations, domain.Simulation{
			ID:             m.ID,
			CustomerID:     m.CustomerID,
			ProductID:      m.ProductID,
			ProductName:    productName,
			AmountInvested: m.AmountInvested,
			FinalValue:     m.FinalValue,
			TermMonths:     m.TermMonths,
			SimulatedAt:    m.SimulatedAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating simulation rows: %w", err)
	}
	return simulations, nil
}

func (r *PgxSimulationRepository) CountSimulationsByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var count int64
	err := queryRunner(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM simulations WHERE customer_id = $1;`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count simulations for customer %d: %w", customerID, err)
	}
	return count, nil
}

func (r *PgxSimulationRepository) AggregateByProductDay(ctx context.Context) ([]domain.ProductDayAggregate, error) {
	query := `
		SELECT p.name, DATE(s.simulated_at) AS day, COUNT(*), AVG(s.final_value)
		FROM simulations s
		JOIN products p ON p.id = s.product_id
		GROUP BY p.name, DATE(s.simulated_at)
		ORDER BY day DESC, p.name;
	`
	rows, err := queryRunner(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate simulations: %w", err)
	}
	defer rows.Close()

	aggregates := make([]domain.ProductDayAggregate, 0)
	for rows.Next() {
		var agg domain.ProductDayAggregate
		if err := rows.Scan(&agg.ProductName, &agg.Day, &agg.Count, &agg.AvgFinalValue); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate row: %w", err)
		}
		aggregates = append(aggregates, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating aggregate rows: %w", err)
	}
	return aggregates, nil
}
