package services_test

import (
	"context"
	"time"

	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

var _ portsrepo.ProductRepository = (*MockProductRepository)(nil)

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProductsByRecommendedProfile(ctx context.Context, profile string) ([]domain.Product, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) CountProducts(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepository = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomerRiskProfile(ctx context.Context, customerID int64, profile domain.RiskProfile) error {
	args := m.Called(ctx, customerID, profile)
	return args.Error(0)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountCustomers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock SimulationRepository ---
type MockSimulationRepository struct {
	mock.Mock
}

var _ portsrepo.SimulationRepository = (*MockSimulationRepository)(nil)

func (m *MockSimulationRepository) SaveSimulation(ctx context.Context, simulation *domain.Simulation) error {
	args := m.Called(ctx, simulation)
	return args.Error(0)
}

func (m *MockSimulationRepository) ListSimulations(ctx context.Context) ([]domain.Simulation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Simulation), args.Error(1)
}

func (m *MockSimulationRepository) CountSimulationsByCustomer(ctx context.Context, customerID int64) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSimulationRepository) AggregateByProductDay(ctx context.Context) ([]domain.ProductDayAggregate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductDayAggregate), args.Error(1)
}

// --- Mock HistoryRepository ---
type MockHistoryRepository struct {
	mock.Mock
}

var _ portsrepo.HistoryRepository = (*MockHistoryRepository)(nil)

func (m *MockHistoryRepository) SaveHistoryEntry(ctx context.Context, entry *domain.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListHistoryByCustomer(ctx context.Context, customerID int64) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func (m *MockHistoryRepository) CountHistoryEntries(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock TelemetryRepository ---
type MockTelemetryRepository struct {
	mock.Mock
}

var _ portsrepo.TelemetryRepository = (*MockTelemetryRepository)(nil)

func (m *MockTelemetryRepository) SaveTelemetryEvent(ctx context.Context, event domain.TelemetryEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockTelemetryRepository) ListTelemetryEventsBetween(ctx context.Context, from, to time.Time) ([]domain.TelemetryEvent, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TelemetryEvent), args.Error(1)
}

// passthroughTxManager runs the closure on the caller's context with no real
// transaction, which is all the service tests need.
type passthroughTxManager struct{}

var _ portsrepo.TransactionManager = passthroughTxManager{}

func (passthroughTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
