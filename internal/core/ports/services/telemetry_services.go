package services

import (
	"context"
	"time"

	"github.com/cefinvest/invest_backend/internal/dto"
)

// TelemetrySvc records and aggregates per-request durations.
type TelemetrySvc interface {
	// Record persists one duration sample. Failures are logged, never
	// propagated: telemetry must not break the request it measures.
	Record(ctx context.Context, serviceName string, duration time.Duration)

	// GetTelemetry aggregates events per service over the window. Nil
	// bounds default to the last 30 days.
	GetTelemetry(ctx context.Context, from, to *time.Time) (dto.TelemetryResponse, error)
}
