package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	"github.com/cefinvest/invest_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTelemetryRepository struct {
	db *pgxpool.Pool
}

func newPgxTelemetryRepository(db *pgxpool.Pool) portsrepo.TelemetryRepository {
	return &PgxTelemetryRepository{db: db}
}

var _ portsrepo.TelemetryRepository = (*PgxTelemetryRepository)(nil)

func (r *PgxTelemetryRepository) SaveTelemetryEvent(ctx context.Context, event domain.TelemetryEvent) error {
	query := `INSERT INTO telemetry_events (service_name, duration_ms, timestamp) VALUES ($1, $2, $3);`

	_, err := queryRunner(ctx, r.db).Exec(ctx, query, event.ServiceName, event.DurationMs, event.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to save telemetry event: %w", err)
	}
	return nil
}

func (r *PgxTelemetryRepository) ListTelemetryEventsBetween(ctx context.Context, from, to time.Time) ([]domain.TelemetryEvent, error) {
	query := `
		SELECT id, service_name, duration_ms, timestamp
		FROM telemetry_events
		WHERE timestamp BETWEEN $1 AND $2
		ORDER BY timestamp;
	`
	rows, err := queryRunner(ctx, r.db).Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list telemetry events: %w", err)
	}
	defer rows.Close()

	events := make([]domain.TelemetryEvent, 0)
	for rows.Next() {
		var m models.TelemetryEvent
		if err := rows.Scan(&m.ID, &m.ServiceName, &m.DurationMs, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan telemetry row: %w", err)
		}
		events = append(events, domain.TelemetryEvent{
			ID:          m.ID,
			ServiceName: m.ServiceName,
			DurationMs:  m.DurationMs,
			Timestamp:   m.Timestamp,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating telemetry rows: %w", err)
	}
	return events, nil
}
