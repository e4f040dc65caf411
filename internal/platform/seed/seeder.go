package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
)

const (
	seedCustomerCount          = 13
	seedSimulationsPerCustomer = 10
)

// Seeder fills an empty database with a demo catalog, customers, simulation
// runs and investment history. Every step is idempotent, so restarting the
// service never duplicates rows.
type Seeder struct {
	repos  portsrepo.RepositoryProvider
	logger *slog.Logger
}

// NewSeeder creates a Seeder.
func NewSeeder(repos portsrepo.RepositoryProvider, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{repos: repos, logger: logger}
}

// Run seeds products, customers, simulations and history in one transaction.
func (s *Seeder) Run(ctx context.Context) error {
	s.logger.Info("Database seed starting")

	err := s.repos.TxManager.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.seedProducts(ctx); err != nil {
			return err
		}
		if err := s.seedCustomers(ctx); err != nil {
			return err
		}
		if err := s.seedSimulations(ctx); err != nil {
			return err
		}
		return s.seedHistory(ctx)
	})
	if err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	s.logger.Info("Database seed finished")
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	count, err := s.repos.ProductRepo.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Products already present, skipping product seed", slog.Int64("count", count))
		return nil
	}

	for _, product := range demoProducts() {
		p := product
		if err := s.repos.ProductRepo.SaveProduct(ctx, &p); err != nil {
			return err
		}
	}
	s.logger.Info("Seeded demo products", slog.Int("count", len(demoProducts())))
	return nil
}

// seedCustomers tops the customer table up to 13, cycling the declared
// profiles by id.
func (s *Seeder) seedCustomers(ctx context.Context) error {
	count, err := s.repos.CustomerRepo.CountCustomers(ctx)
	if err != nil {
		return err
	}
	if count >= seedCustomerCount {
		s.logger.Info("Customers already present, skipping customer seed", slog.Int64("count", count))
		return nil
	}

	now := time.Now().UTC()
	for id := count + 1; id <= seedCustomerCount; id++ {
		customer := domain.Customer{
			ID:          id,
			RiskProfile: profileForSeedID(id),
			CreatedAt:   now.AddDate(0, 0, -int(id*2)),
		}
		if err := s.repos.CustomerRepo.SaveCustomer(ctx, customer); err != nil {
			return err
		}
	}
	s.logger.Info("Seeded demo customers", slog.Int64("created", seedCustomerCount-count))
	return nil
}

func profileForSeedID(id int64) domain.RiskProfile {
	switch id % 3 {
	case 1:
		return domain.ProfileConservative
	case 2:
		return domain.ProfileModerate
	default:
		return domain.ProfileAggressive
	}
}

// seedSimulations guarantees ten simulation rows per customer, spreading
// each customer's runs over the catalog and the recent past.
func (s *Seeder) seedSimulations(ctx context.Context) error {
	customers, err := s.repos.CustomerRepo.ListCustomers(ctx)
	if err != nil {
		return err
	}
	products, err := s.repos.ProductRepo.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(customers) == 0 || len(products) == 0 {
		s.logger.Warn("Not enough customers or products to seed simulations")
		return nil
	}

	now := time.Now().UTC()
	created := 0

	for _, customer := range customers {
		existing, err := s.repos.SimulationRepo.CountSimulationsByCustomer(ctx, customer.ID)
		if err != nil {
			return err
		}
		for i := int(existing) + 1; i <= seedSimulationsPerCustomer; i++ {
			product := products[(int(customer.ID)+i)%len(products)]

			amount := 1000.0 + float64(customer.ID)*100.0 + float64(i)*50.0
			termMonths := 6 + (i % 12)

			annualRate := 0.10
			if product.AnnualReturnRate != nil {
				annualRate = *product.AnnualReturnRate
			}
			monthlyRate := math.Pow(1+annualRate, 1.0/12.0) - 1
			finalValue := amount * math.Pow(1+monthlyRate, float64(termMonths))

			simulation := domain.Simulation{
				CustomerID:     customer.ID,
				ProductID:      product.ID,
				AmountInvested: amount,
				FinalValue:     finalValue,
				TermMonths:     termMonths,
				SimulatedAt:    now.AddDate(0, 0, -int(customer.ID)*2-i),
			}
			if err := s.repos.SimulationRepo.SaveSimulation(ctx, &simulation); err != nil {
				return err
			}
			created++
		}
	}
	s.logger.Info("Seeded demo simulations", slog.Int("created", created))
	return nil
}

func (s *Seeder) seedHistory(ctx context.Context) error {
	count, err := s.repos.HistoryRepo.CountHistoryEntries(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("History already present, skipping history seed", slog.Int64("count", count))
		return nil
	}

	customers, err := s.repos.CustomerRepo.ListCustomers(ctx)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		s.logger.Warn("No customers to seed investment history for")
		return nil
	}

	first := customers[0].ID
	second := first
	if len(customers) > 1 {
		second = customers[1].ID
	}

	entries := []domain.HistoryEntry{
		{CustomerID: first, Type: "CDB", Amount: 5000.00, ReturnRate: 0.12, Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{CustomerID: first, Type: "Fundo Multimercado", Amount: 3000.00, ReturnRate: 0.08, Date: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{CustomerID: second, Type: "Tesouro Selic", Amount: 8000.00, ReturnRate: 0.09, Date: time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)},
		{CustomerID: second, Type: "CDB", Amount: 4000.00, ReturnRate: 0.11, Date: time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC)},
	}
	for i := range entries {
		if err := s.repos.HistoryRepo.SaveHistoryEntry(ctx, &entries[i]); err != nil {
			return err
		}
	}
	s.logger.Info("Seeded demo investment history", slog.Int("created", len(entries)))
	return nil
}

func demoProducts() []domain.Product {
	return []domain.Product{
		{
			Name:               "CDB 100% CDI",
			Type:               "CDB",
			AnnualReturnRate:   floatPtr(0.13),
			RiskLabel:          "BAIXO",
			MinTermMonths:      intPtr(6),
			MaxTermMonths:      intPtr(36),
			LiquidityDays:      intPtr(1),
			RecommendedProfile: string(domain.ProfileConservative),
		},
		{
			Name:               "CDB 120% CDI",
			Type:               "CDB",
			AnnualReturnRate:   floatPtr(0.16),
			RiskLabel:          "MÉDIO",
			MinTermMonths:      intPtr(12),
			MaxTermMonths:      intPtr(48),
			LiquidityDays:      intPtr(30),
			RecommendedProfile: string(domain.ProfileModerate),
		},
		{
			Name:               "Tesouro Selic 2029",
			Type:               "TESOURO",
			AnnualReturnRate:   floatPtr(0.11),
			RiskLabel:          "BAIXO",
			MinTermMonths:      intPtr(24),
			MaxTermMonths:      intPtr(60),
			LiquidityDays:      intPtr(1),
			RecommendedProfile: string(domain.ProfileConservative),
		},
		{
			Name:               "Fundo Multimercado XYZ",
			Type:               "Fundo Multimercado",
			AnnualReturnRate:   floatPtr(0.18),
			RiskLabel:          "ALTO",
			MinTermMonths:      intPtr(12),
			MaxTermMonths:      intPtr(0),
			LiquidityDays:      intPtr(30),
			RecommendedProfile: string(domain.ProfileAggressive),
		},
		{
			Name:               "LCI Imobiliária 95% CDI",
			Type:               "LCI",
			AnnualReturnRate:   floatPtr(0.125),
			RiskLabel:          "BAIXO",
			MinTermMonths:      intPtr(12),
			MaxTermMonths:      intPtr(36),
			LiquidityDays:      intPtr(90),
			RecommendedProfile: string(domain.ProfileConservative),
		},
		{
			Name:               "Debênture Incentivada ABC",
			Type:               "Debênture",
			AnnualReturnRate:   floatPtr(0.145),
			RiskLabel:          "MÉDIO",
			MinTermMonths:      intPtr(36),
			MaxTermMonths:      intPtr(84),
			LiquidityDays:      intPtr(0),
			RecommendedProfile: string(domain.ProfileModerate),
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
