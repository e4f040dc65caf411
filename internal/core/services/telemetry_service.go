package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/cefinvest/invest_backend/internal/dto"
)

// defaultTelemetryWindow is how far back GetTelemetry looks when the caller
// gives no bounds.
const defaultTelemetryWindow = 30 * 24 * time.Hour

// TelemetryService persists per-request duration events and aggregates them
// into per-service call counts and mean durations.
type TelemetryService struct {
	telemetryRepo portsrepo.TelemetryRepository
}

// NewTelemetryService creates a TelemetryService.
func NewTelemetryService(telemetryRepo portsrepo.TelemetryRepository) *TelemetryService {
	return &TelemetryService{telemetryRepo: telemetryRepo}
}

var _ portssvc.TelemetrySvc = (*TelemetryService)(nil)

// Record persists one duration sample. A storage failure is logged and
// swallowed so telemetry never breaks the request it measures.
func (s *TelemetryService) Record(ctx context.Context, serviceName string, duration time.Duration) {
	event := domain.TelemetryEvent{
		ServiceName: serviceName,
		DurationMs:  duration.Milliseconds(),
		Timestamp:   time.Now(),
	}
	if err := s.telemetryRepo.SaveTelemetryEvent(ctx, event); err != nil {
		slog.Default().Warn("Failed to persist telemetry event",
			slog.String("service_name", serviceName),
			slog.String("error", err.Error()),
		)
	}
}

// GetTelemetry aggregates events per service name over [from, to]. Nil
// bounds default to the last 30 days.
func (s *TelemetryService) GetTelemetry(ctx context.Context, from, to *time.Time) (dto.TelemetryResponse, error) {
	end := time.Now()
	if to != nil {
		end = *to
	}
	start := end.Add(-defaultTelemetryWindow)
	if from != nil {
		start = *from
	}

	events, err := s.telemetryRepo.ListTelemetryEventsBetween(ctx, start, end)
	if err != nil {
		return dto.TelemetryResponse{}, fmt.Errorf("%w: listing telemetry events: %v", apperrors.ErrInternal, err)
	}

	type bucket struct {
		count   int
		totalMs int64
	}
	buckets := make(map[string]*bucket)
	for _, event := range events {
		b, ok := buckets[event.ServiceName]
		if !ok {
			b = &bucket{}
			buckets[event.ServiceName] = b
		}
		b.count++
		b.totalMs += event.DurationMs
	}

	services := make([]dto.ServiceMetric, 0, len(buckets))
	for name, b := range buckets {
		services = append(services, dto.ServiceMetric{
			Name:          name,
			CallCount:     b.count,
			AvgDurationMs: float64(b.totalMs) / float64(b.count),
		})
	}
	sort.Slice(services, func(i, j int) bool { return services[i].Name < services[j].Name })

	return dto.TelemetryResponse{
		Services: services,
		Period: dto.TelemetryPeriod{
			From: start.Format("2006-01-02"),
			To:   end.Format("2006-01-02"),
		},
	}, nil
}
