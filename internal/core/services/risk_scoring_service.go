package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cefinvest/invest_backend/internal/apperrors"
	"github.com/cefinvest/invest_backend/internal/core/domain"
	portsrepo "github.com/cefinvest/invest_backend/internal/core/ports/repositories"
	portssvc "github.com/cefinvest/invest_backend/internal/core/ports/services"
	"github.com/cefinvest/invest_backend/internal/middleware"
)

const (
	descriptionInvalid      = "Invalid customer identifier."
	descriptionUndefined    = "No investment history recorded for this customer."
	descriptionConservative = "Low risk tolerance, focused on capital preservation and liquidity."
	descriptionModerate     = "Balanced between safety and return."
	descriptionAggressive   = "High risk tolerance, focused on return."
)

// RiskScoringService computes a 0-100 risk score and a categorical profile
// from a customer's investment history. The computation is pure; persisting
// the resulting profile is the caller's decision.
type RiskScoringService struct {
	historyRepo portsrepo.HistoryRepository
	classifier  *RiskClassifier
}

// NewRiskScoringService creates a RiskScoringService.
func NewRiskScoringService(historyRepo portsrepo.HistoryRepository, classifier *RiskClassifier) *RiskScoringService {
	return &RiskScoringService{historyRepo: historyRepo, classifier: classifier}
}

var _ portssvc.RiskProfileSvc = (*RiskScoringService)(nil)

// CalculateProfile loads the customer's history and scores it.
func (s *RiskScoringService) CalculateProfile(ctx context.Context, customerID int64) (domain.RiskAssessment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if customerID <= 0 {
		return domain.RiskAssessment{
			CustomerID:  customerID,
			Profile:     domain.ClassificationInvalid,
			Score:       0,
			Description: descriptionInvalid,
		}, nil
	}

	history, err := s.historyRepo.ListHistoryByCustomer(ctx, customerID)
	if err != nil {
		logger.Error("Failed to load investment history", slog.Int64("customer_id", customerID), slog.String("error", err.Error()))
		return domain.RiskAssessment{}, fmt.Errorf("%w: loading investment history: %v", apperrors.ErrInternal, err)
	}

	assessment := s.ScoreHistory(customerID, history)
	logger.Debug("Risk profile calculated",
		slog.Int64("customer_id", customerID),
		slog.String("profile", assessment.Profile),
		slog.Int("score", assessment.Score),
	)
	return assessment, nil
}

// ScoreHistory scores an already-loaded history. Exposed separately so the
// simulation orchestrator can score the entries it just wrote inside its
// own transaction.
func (s *RiskScoringService) ScoreHistory(customerID int64, history []domain.HistoryEntry) domain.RiskAssessment {
	if len(history) == 0 {
		return domain.RiskAssessment{
			CustomerID:  customerID,
			Profile:     domain.ClassificationUndefined,
			Score:       0,
			Description: descriptionUndefined,
		}
	}

	var weightedReturn, totalWeight float64
	maxRiskLevel := domain.RiskLevel(0)

	for _, entry := range history {
		rate := normalizeReturnRate(entry.ReturnRate)

		weight := entry.Amount
		if weight <= 0 {
			weight = 1
		}
		weightedReturn += rate * weight
		totalWeight += weight

		if level := s.classifier.ClassifyInvestmentType(entry.Type); level > maxRiskLevel {
			maxRiskLevel = level
		}
	}

	avgReturn := weightedReturn / totalWeight
	operationCount := len(history)

	rawScore := returnScore(avgReturn) + riskExposureScore(maxRiskLevel) + experienceScore(operationCount)
	if operationCount < 3 && maxRiskLevel == domain.RiskHigh {
		// Little experience combined with high-risk exposure reads as
		// overreach, not appetite.
		rawScore -= 15
	}

	score := clampScore(rawScore)

	profile, description := classifyScore(score)
	return domain.RiskAssessment{
		CustomerID:  customerID,
		Profile:     profile,
		Score:       score,
		Description: description,
	}
}

// normalizeReturnRate rescales rates recorded as percentages (12.0) back to
// decimal fractions (0.12). Upstream history data mixes both conventions.
func normalizeReturnRate(rate float64) float64 {
	if rate > 1.0 {
		return rate / 100.0
	}
	return rate
}

func returnScore(avgReturn float64) int {
	switch {
	case avgReturn <= 0:
		return 5
	case avgReturn <= 0.03:
		return 15
	case avgReturn <= 0.07:
		return 25
	case avgReturn <= 0.12:
		return 35
	default:
		return 40
	}
}

func riskExposureScore(maxRiskLevel domain.RiskLevel) int {
	switch maxRiskLevel {
	case domain.RiskLow:
		return 2
	case domain.RiskMedium:
		return 18
	case domain.RiskHigh:
		return 30
	default:
		return 0
	}
}

func experienceScore(operationCount int) int {
	switch {
	case operationCount <= 1:
		return 3
	case operationCount <= 3:
		return 5
	case operationCount <= 10:
		return 12
	default:
		return 20
	}
}

func clampScore(raw int) int {
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return raw
}

func classifyScore(score int) (profile, description string) {
	switch {
	case score <= 65:
		return domain.ClassificationConservative, descriptionConservative
	case score <= 90:
		return domain.ClassificationModerate, descriptionModerate
	default:
		return domain.ClassificationAggressive, descriptionAggressive
	}
}
