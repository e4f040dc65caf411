package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/cefinvest/invest_backend/internal/dto"
	"github.com/cefinvest/invest_backend/internal/middleware"
)

// SimulationRecorder receives one observation per finished simulation.
// Implemented by the prometheus collector; a nil recorder is a no-op.
type SimulationRecorder interface {
	RecordSimulation(duration time.Duration, riskScore int, outcome string)
}

// SimulationService orchestrates one simulation request: validate, resolve
// customer and product, compute the projection, persist the run and its
// history entry, and recompute the customer's risk profile. Steps after
// validation run inside a single transaction.
type SimulationService struct {
	productRepo    portsrepo.ProductRepository
	customerRepo   portsrepo.CustomerRepository
	simulationRepo portsrepo.SimulationRepository
	historyRepo    portsrepo.HistoryRepository
	scoring        *RiskScoringService
	calculator     *InterestCalculator
	classifier     *RiskClassifier
	txm            portsrepo.TransactionManager
	recorder       SimulationRecorder

	// autoCreateCustomers makes a simulation against an unknown customer id
	// provision that customer with an UNDEFINED profile instead of failing.
	autoCreateCustomers bool
}

// NewSimulationService creates a SimulationService. recorder may be nil.
func NewSimulationService(
	productRepo portsrepo.ProductRepository,
	customerRepo portsrepo.CustomerRepository,
	simulationRepo portsrepo.SimulationRepository,
	historyRepo portsrepo.HistoryRepository,
	scoring *RiskScoringService,
	txm portsrepo.TransactionManager,
	recorder SimulationRecorder,
	autoCreateCustomers bool,
) *SimulationService {
	return &SimulationService{
		productRepo:         productRepo,
		customerRepo:        customerRepo,
		simulationRepo:      simulationRepo,
		historyRepo:         historyRepo,
		scoring:             scoring,
		calculator:          NewInterestCalculator(),
		classifier:          NewRiskClassifier(),
		txm:                 txm,
		recorder:            recorder,
		autoCreateCustomers: autoCreateCustomers,
	}
}

var _ portssvc.SimulationSvc = (*SimulationService)(nil)

// Simulate runs one simulation request end to end.
func (s *SimulationService) Simulate(ctx context.Context, req dto.SimulationRequest) (*dto.SimulationResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()

	response, riskScore, err := s.simulate(ctx, logger, req)

	if s.recorder != nil {
		s.recorder.RecordSimulation(time.Since(start), riskScore, outcomeLabel(err))
	}
	return response, err
}

func (s *SimulationService) simulate(ctx context.Context, logger *slog.Logger, req dto.SimulationRequest) (*dto.SimulationResponse, int, error) {
	if err := validateRequest(req); err != nil {
		return nil, 0, err
	}

	var response *dto.SimulationResponse
	var riskScore int

	err := s.txm.WithinTx(ctx, func(ctx context.Context) error {
		customer, err := s.resolveCustomer(ctx, logger, req.CustomerID)
		if err != nil {
			return err
		}

		product, err := s.resolveProduct(ctx, logger, req, customer.RiskProfile)
		if err != nil {
			return err
		}

		result, err := s.calculator.Simulate(req.Amount, product.AnnualReturnRate, req.TermMonths)
		if err != nil {
			return err
		}

		now := time.Now()

		simulation := domain.Simulation{
			CustomerID:     customer.ID,
			ProductID:      product.ID,
			AmountInvested: req.Amount,
			FinalValue:     result.FinalValue,
			TermMonths:     req.TermMonths,
			SimulatedAt:    now,
		}
		if err := s.simulationRepo.SaveSimulation(ctx, &simulation); err != nil {
			return fmt.Errorf("saving simulation: %w", err)
		}

		entry := domain.HistoryEntry{
			CustomerID: customer.ID,
			Type:       historyType(product),
			Amount:     req.Amount,
			ReturnRate: result.EffectiveReturn,
			Date:       now,
		}
		if err := s.historyRepo.SaveHistoryEntry(ctx, &entry); err != nil {
			return fmt.Errorf("saving history entry: %w", err)
		}

		riskScore, err = s.recomputeProfile(ctx, logger, customer)
		if err != nil {
			return err
		}

		response = dto.NewSimulationResponse(product, result.FinalValue, result.EffectiveReturn, req.TermMonths, now)
		return nil
	})
	if err != nil {
		return nil, 0, asKnownOrInternal(err)
	}

	logger.Info("Simulation completed",
		slog.Int64("customer_id", req.CustomerID),
		slog.Int64("product_id", response.ValidatedProduct.ID),
		slog.Float64("final_value", response.Result.FinalValue),
	)
	return response, riskScore, nil
}

func validateRequest(req dto.SimulationRequest) error {
	switch {
	case req.CustomerID <= 0:
		return fmt.Errorf("%w: customerId must be positive", apperrors.ErrValidation)
	case req.ProductID != nil && *req.ProductID <= 0:
		return fmt.Errorf("%w: productId must be positive when present", apperrors.ErrValidation)
	case req.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	case req.TermMonths <= 0:
		return fmt.Errorf("%w: termMonths must be positive", apperrors.ErrValidation)
	}
	return nil
}

// resolveCustomer fetches the customer, provisioning an UNDEFINED-profile
// record when the id is unknown and auto-creation is enabled.
func (s *SimulationService) resolveCustomer(ctx context.Context, logger *slog.Logger, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("loading customer %d: %w", customerID, err)
	}
	if !s.autoCreateCustomers {
		return nil, fmt.Errorf("%w: customer %d is not registered", apperrors.ErrNotFound, customerID)
	}

	created := domain.Customer{
		ID:          customerID,
		RiskProfile: domain.ProfileUndefined,
		CreatedAt:   time.Now(),
	}
	if err := s.customerRepo.SaveCustomer(ctx, created); err != nil {
		return nil, fmt.Errorf("auto-creating customer %d: %w", customerID, err)
	}
	logger.Info("Customer auto-created", slog.Int64("customer_id", customerID))
	return &created, nil
}

func (s *SimulationService) resolveProduct(ctx context.Context, logger *slog.Logger, req dto.SimulationRequest, profile domain.RiskProfile) (domain.Product, error) {
	if req.ProductID != nil {
		return s.resolveExplicitProduct(ctx, logger, req, profile)
	}
	return s.autoSelectProduct(ctx, logger, req, profile)
}

// resolveExplicitProduct validates a caller-chosen product. A term mismatch
// rejects the request; a profile mismatch is deliberate customer choice and
// is only logged.
func (s *SimulationService) resolveExplicitProduct(ctx context.Context, logger *slog.Logger, req dto.SimulationRequest, profile domain.RiskProfile) (domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, *req.ProductID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Product{}, fmt.Errorf("%w: product %d", apperrors.ErrNotFound, *req.ProductID)
		}
		return domain.Product{}, fmt.Errorf("loading product %d: %w", *req.ProductID, err)
	}

	if !TermMatches(*product, req.TermMonths) {
		return domain.Product{}, fmt.Errorf("%w: term of %d months is outside the range of product %d", apperrors.ErrValidation, req.TermMonths, product.ID)
	}

	if !s.classifier.IsProfileCompatible(*product, profile) {
		logger.Warn("Product risk exceeds customer profile tolerance",
			slog.Int64("product_id", product.ID),
			slog.String("customer_profile", string(profile)),
			slog.String("product_risk", product.RiskLabel),
		)
	}

	return *product, nil
}

// autoSelectProduct narrows the catalog by the hard term and type
// constraints, applies the customer's profile as a soft constraint, and
// lets the selection heuristic pick one candidate.
func (s *SimulationService) autoSelectProduct(ctx context.Context, logger *slog.Logger, req dto.SimulationRequest, profile domain.RiskProfile) (domain.Product, error) {
	catalog, err := s.productRepo.ListProducts(ctx)
	if err != nil {
		return domain.Product{}, fmt.Errorf("listing product catalog: %w", err)
	}
	if len(catalog) == 0 {
		return domain.Product{}, fmt.Errorf("%w: product catalog is empty", apperrors.ErrInternal)
	}

	eligible := make([]domain.Product, 0, len(catalog))
	for _, p := range catalog {
		if TermMatches(p, req.TermMonths) && TypeMatches(p, req.ProductType) {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return domain.Product{}, fmt.Errorf("%w: no product matches term %d and type %q", apperrors.ErrUnprocessable, req.TermMonths, req.ProductType)
	}

	candidates := s.classifier.FilterByProfile(eligible, profile)
	if len(candidates) == 0 {
		logger.Debug("No profile-compatible product; falling back to term/type matches",
			slog.String("customer_profile", string(profile)),
		)
		candidates = eligible
	}

	return ChooseProduct(candidates, req.TermMonths)
}

// recomputeProfile rescores the customer from the history written in this
// transaction and persists a changed profile.
func (s *SimulationService) recomputeProfile(ctx context.Context, logger *slog.Logger, customer *domain.Customer) (int, error) {
	history, err := s.historyRepo.ListHistoryByCustomer(ctx, customer.ID)
	if err != nil {
		return 0, fmt.Errorf("loading history for rescoring: %w", err)
	}

	assessment := s.scoring.ScoreHistory(customer.ID, history)

	profile, ok := domain.ProfileFromClassification(assessment.Profile)
	if ok && profile != customer.RiskProfile {
		if err := s.customerRepo.UpdateCustomerRiskProfile(ctx, customer.ID, profile); err != nil {
			return 0, fmt.Errorf("persisting recomputed risk profile: %w", err)
		}
		logger.Info("Customer risk profile updated",
			slog.Int64("customer_id", customer.ID),
			slog.String("profile", string(profile)),
			slog.Int("score", assessment.Score),
		)
	}
	return assessment.Score, nil
}

// historyType picks the text the risk classifier will later score: the
// product type, or its name when the type is blank.
func historyType(product domain.Product) string {
	if product.Type != "" {
		return product.Type
	}
	return product.Name
}

// asKnownOrInternal passes the known error kinds through unchanged and
// wraps everything else as an internal error.
func asKnownOrInternal(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrUnprocessable),
		errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrInternal):
		return err
	default:
		return fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
	}
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperrors.ErrValidation):
		return "bad_request"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrUnprocessable):
		return "unprocessable"
	default:
		return "internal_error"
	}
}

// ListSimulations returns every persisted simulation.
func (s *SimulationService) ListSimulations(ctx context.Context) ([]dto.SimulationHistoryResponse, error) {
	simulations, err := s.simulationRepo.ListSimulations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: listing simulations: %v", apperrors.ErrInternal, err)
	}

	out := make([]dto.SimulationHistoryResponse, 0, len(simulations))
	for _, sim := range simulations {
		out = append(out, dto.ToSimulationHistoryResponse(sim))
	}
	return out, nil
}

// SimulationsByProductDay returns the per-product per-day rollup.
func (s *SimulationService) SimulationsByProductDay(ctx context.Context) ([]dto.SimulationByProductDayResponse, error) {
	aggregates, err := s.simulationRepo.AggregateByProductDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: aggregating simulations: %v", apperrors.ErrInternal, err)
	}

	out := make([]dto.SimulationByProductDayResponse, 0, len(aggregates))
	for _, agg := range aggregates {
		out = append(out, dto.ToSimulationByProductDayResponse(agg))
	}
	return out, nil
}
