package pgsql

import (
	"context"
	"fmt"

	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	"github.com/cefinvest/invest_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHistoryRepository struct {
	db *pgxpool.Pool
}

func newPgxHistoryRepository(db *pgxpool.Pool) portsrepo.HistoryRepository {
	return &PgxHistoryRepository{db: db}
}

var _ portsrepo.HistoryRepository = (*PgxHistoryRepository)(nil)

func (r *PgxHistoryRepository) SaveHistoryEntry(ctx context.Context, entry *domain.HistoryEntry) error {
	query := `
		INSERT INTO investment_history (customer_id, type, amount, return_rate, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := queryRunner(ctx, r.db).QueryRow(ctx, query,
		entry.CustomerID,
		entry.Type,
		entry.Amount,
		entry.ReturnRate,
		entry.Date,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}
	return nil
}

func (r *PgxHistoryRepository) ListHistoryByCustomer(ctx context.Context, customerID int64) ([]domain.HistoryEntry, error) {
	query := `
		SELECT id, customer_id, type, amount, return_rate, date
		FROM investment_history
		WHERE customer_id = $1
		ORDER BY date, id;
	`
	rows, err := queryRunner(ctx, r.db).Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list history for customer %d: %w", customerID, err)
	}
	defer rows.Close()

	entries := make([]domain.HistoryEntry, 0)
	for rows.Next() {
		var m models.HistoryEntry
		if err := rows.Scan(&m.ID, &m.CustomerID, &m.Type, &m.Amount, &m.ReturnRate, &m.Date); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entries = append(entries, domain.HistoryEntry{
			ID:         m.ID,
			CustomerID: m.CustomerID,
			Type:       m.Type,
			Amount:     m.Amount,
			ReturnRate: m.ReturnRate,
			Date:       m.Date,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating history rows: %w", err)
	}
	return entries, nil
}

func (r *PgxHistoryRepository) CountHistoryEntries(ctx context.Context) (int64, error) {
	var count int64
	err := queryRunner(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM investment_history;`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count history entries: %w", err)
	}
	return count, nil
}
