package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cefinvest/invest_backend/internal/core/domain"
	"github.com/cefinvest/invest_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTelemetryRecord_PersistsEvent(t *testing.T) {
	mockRepo := new(MockTelemetryRepository)
	svc := services.NewTelemetryService(mockRepo)

	mockRepo.On("SaveTelemetryEvent", mock.Anything, mock.MatchedBy(func(e domain.TelemetryEvent) bool {
		return e.ServiceName == "POST /api/v1/simulations" && e.DurationMs == 125
	})).Return(nil).Once()

	svc.Record(context.Background(), "POST /api/v1/simulations", 125*time.Millisecond)

	mockRepo.AssertExpectations(t)
}

func TestTelemetryRecord_SwallowsStorageFailure(t *testing.T) {
	mockRepo := new(MockTelemetryRepository)
	svc := services.NewTelemetryService(mockRepo)

	mockRepo.On("SaveTelemetryEvent", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	// Must not panic or surface the error.
	svc.Record(context.Background(), "GET /api/v1/products", time.Millisecond)

	mockRepo.AssertExpectations(t)
}

func TestGetTelemetry_AggregatesPerService(t *testing.T) {
	mockRepo := new(MockTelemetryRepository)
	svc := services.NewTelemetryService(mockRepo)

	events := []domain.TelemetryEvent{
		{ServiceName: "POST /api/v1/simulations", DurationMs: 100},
		{ServiceName: "POST /api/v1/simulations", DurationMs: 200},
		{ServiceName: "GET /api/v1/products", DurationMs: 10},
	}
	mockRepo.On("ListTelemetryEventsBetween", mock.Anything, mock.Anything, mock.Anything).Return(events, nil).Once()

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	response, err := svc.GetTelemetry(context.Background(), &from, &to)

	require.NoError(t, err)
	require.Len(t, response.Services, 2)

	// Sorted by name.
	assert.Equal(t, "GET /api/v1/products", response.Services[0].Name)
	assert.Equal(t, 1, response.Services[0].CallCount)
	assert.InDelta(t, 10.0, response.Services[0].AvgDurationMs, 0.001)

	assert.Equal(t, "POST /api/v1/simulations", response.Services[1].Name)
	assert.Equal(t, 2, response.Services[1].CallCount)
	assert.InDelta(t, 150.0, response.Services[1].AvgDurationMs, 0.001)

	assert.Equal(t, "2026-08-01", response.Period.From)
	assert.Equal(t, "2026-08-28", response.Period.To)
}

func TestGetTelemetry_DefaultsToLastThirtyDays(t *testing.T) {
	mockRepo := new(MockTelemetryRepository)
	svc := services.NewTelemetryService(mockRepo)

	var gotFrom, gotTo time.Time
	mockRepo.On("ListTelemetryEventsBetween", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			gotFrom = args.Get(1).(time.Time)
			gotTo = args.Get(2).(time.Time)
		}).
		Return([]domain.TelemetryEvent{}, nil).Once()

	_, err := svc.GetTelemetry(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.InDelta(t, 30*24*time.Hour, gotTo.Sub(gotFrom), float64(time.Minute))
}
