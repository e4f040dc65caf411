package repositories

import (
	"context"
	"time"

	"github.com/cefinvest/invest_backend/internal/core/domain"
)

// TelemetryRepository stores per-request duration events.
type TelemetryRepository interface {
	// SaveTelemetryEvent persists one event.
	SaveTelemetryEvent(ctx context.Context, event domain.TelemetryEvent) error

	// ListTelemetryEventsBetween returns events whose timestamp falls in
	// [from, to], inclusive.
	ListTelemetryEventsBetween(ctx context.Context, from, to time.Time) ([]domain.TelemetryEvent, error)
}
